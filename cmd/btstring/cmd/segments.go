package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bt-tools/btstring/foundation/core/errors"
	"github.com/bt-tools/btstring/foundation/utils/stringx"
)

func newFirstCmd(a *app) *cobra.Command {
	var sep string

	cmd := &cobra.Command{
		Use:   "first",
		Short: "Print the text before the first separator",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&sep, "sep", ",", "separator")

	cmd.RunE = a.run("first", func(cmd *cobra.Command, args []string) error {
		text, err := a.inputText(cmd)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), stringx.FirstSegment(text, sep))
		return err
	})

	return cmd
}

func newSegmentsCmd(a *app) *cobra.Command {
	var sep string

	cmd := &cobra.Command{
		Use:   "segments",
		Short: "Print every segment between separators, one per line",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&sep, "sep", ",", "separator")

	cmd.RunE = a.run("segments", func(cmd *cobra.Command, args []string) error {
		text, err := a.inputText(cmd)
		if err != nil {
			return err
		}
		return writeLines(cmd.OutOrStdout(), stringx.Segments(text, sep))
	})

	return cmd
}

func newKVCmd(a *app) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "kv --key KEY PAIR...",
		Short: "Look up a key among key=value pairs",
		Long: `Print the value of the first PAIR whose key equals --key.
Exits with status 1 when no pair matches.`,
		Args: cobra.MinimumNArgs(1),
	}
	cmd.Flags().StringVar(&key, "key", "", "key to look up")
	_ = cmd.MarkFlagRequired("key")

	cmd.RunE = a.run("kv", func(cmd *cobra.Command, args []string) error {
		value, ok := stringx.ValueForKey(args, key)
		if !ok {
			return errors.NotFound(errors.ModuleCLI, "kv", key)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), value)
		return err
	})

	return cmd
}
