package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bt-tools/btstring/foundation/utils/stringx"
)

func newCountCmd(a *app) *cobra.Command {
	var paragraphs bool

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count words, or paragraphs with --paragraphs",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().BoolVar(&paragraphs, "paragraphs", false, "count paragraphs instead of words")

	cmd.RunE = a.run("count", func(cmd *cobra.Command, args []string) error {
		text, err := a.inputText(cmd)
		if err != nil {
			return err
		}

		n := stringx.CountWords(text)
		if paragraphs {
			n = stringx.CountParagraphs(text)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
		return err
	})

	return cmd
}
