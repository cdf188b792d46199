package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bt-tools/btstring/foundation/core/log"
)

func newFindCmd(a *app) *cobra.Command {
	var word string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Print the byte offsets of whole-word matches",
		Long: `Print the byte offset of every whole-word occurrence of --word, one per
line. Word boundaries use the configured split.punctuation.`,
		Args: cobra.NoArgs,
	}
	cmd.Flags().StringVar(&word, "word", "", "word to search for")
	_ = cmd.MarkFlagRequired("word")

	cmd.RunE = a.run("find", func(cmd *cobra.Command, args []string) error {
		text, err := a.inputText(cmd)
		if err != nil {
			return err
		}

		offsets := a.settings.Splitter().FindWholeWord(text, word)
		lines := make([]string, len(offsets))
		for i, off := range offsets {
			lines[i] = strconv.Itoa(off)
		}
		a.logger.Debug("whole word search", log.Fields{"word": word, "matches": len(offsets)})
		return writeLines(cmd.OutOrStdout(), lines)
	})

	return cmd
}
