package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bt-tools/btstring/foundation/core/errors"
	"github.com/bt-tools/btstring/foundation/core/log"
)

// inputText returns --text when it was given, otherwise all of stdin with a
// single trailing line break removed. An interactive terminal is not read.
func (a *app) inputText(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("text") {
		a.logger.Trace("input from flag", log.Int("bytes", len(a.text)), log.Bool("stdin", false))
		return a.text, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if stat, err := f.Stat(); err == nil && stat.Mode()&os.ModeCharDevice != 0 {
			return "", errors.InvalidInput(errors.ModuleCLI, "read_input", "terminal", "--text or piped stdin")
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.OperationFailed(errors.ModuleCLI, "read_input", err)
	}

	text := string(data)
	if s, ok := strings.CutSuffix(text, "\n"); ok {
		text = strings.TrimSuffix(s, "\r")
	}
	a.logger.Trace("input from stdin", log.Int("bytes", len(text)), log.Bool("stdin", true))
	return text, nil
}

// writeLines prints each item on its own line
func writeLines(w io.Writer, items []string) error {
	for _, item := range items {
		if _, err := io.WriteString(w, item+"\n"); err != nil {
			return err
		}
	}
	return nil
}
