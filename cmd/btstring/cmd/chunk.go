package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bt-tools/btstring/foundation/utils/stringx"
)

func newChunkCmd(a *app) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "chunk",
		Short: "Cut text into chunks of at most --size bytes",
		Long: `Cut the input into consecutive chunks of at most --size bytes, one per
line. Grapheme clusters are never split; a cluster wider than --size gets a
chunk of its own.`,
		Args: cobra.NoArgs,
	}
	cmd.Flags().IntVar(&size, "size", 0, "maximum chunk size in bytes (default: chunk.size)")

	cmd.RunE = a.run("chunk", func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("size") {
			size = a.settings.Chunk.Size
		}

		text, err := a.inputText(cmd)
		if err != nil {
			return err
		}

		chunks, err := stringx.ChunkBytes(text, size)
		if err != nil {
			return err
		}
		return writeLines(cmd.OutOrStdout(), chunks)
	})

	return cmd
}
