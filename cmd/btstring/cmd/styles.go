package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
)

// listStyles renders indexed output. The renderer inspects w, so piped
// output and test buffers stay free of escape codes.
type listStyles struct {
	index lipgloss.Style
	value lipgloss.Style
}

func newListStyles(w io.Writer) listStyles {
	r := lipgloss.NewRenderer(w)
	return listStyles{
		index: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		value: r.NewStyle().
			Foreground(colorMuted),
	}
}
