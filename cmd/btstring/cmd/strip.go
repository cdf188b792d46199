package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bt-tools/btstring/foundation/utils/stringx"
)

func newStripCmd(a *app) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "strip",
		Short: "Remove <tag>...</tag> regions from the text",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&tag, "tag", "", "tag name, matched case-insensitively")
	_ = cmd.MarkFlagRequired("tag")

	cmd.RunE = a.run("strip", func(cmd *cobra.Command, args []string) error {
		text, err := a.inputText(cmd)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), stringx.StripTag(text, tag))
		return err
	})

	return cmd
}
