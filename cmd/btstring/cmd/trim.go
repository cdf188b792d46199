package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/bt-tools/btstring/foundation/core/errors"
	"github.com/bt-tools/btstring/foundation/utils/stringx"
)

func newTrimCmd(a *app) *cobra.Command {
	var (
		char string
		side string
	)

	cmd := &cobra.Command{
		Use:   "trim",
		Short: "Remove one character from the beginning or end",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&char, "char", "", "character to remove")
	cmd.Flags().StringVar(&side, "side", "end", "side to trim: begin|end")
	_ = cmd.MarkFlagRequired("char")

	cmd.RunE = a.run("trim", func(cmd *cobra.Command, args []string) error {
		if utf8.RuneCountInString(char) != 1 {
			return errors.InvalidInput(errors.ModuleCLI, "trim", char, "exactly one character")
		}
		target, _ := utf8.DecodeRuneInString(char)

		s, err := stringx.ParseSide(side)
		if err != nil {
			return err
		}

		text, err := a.inputText(cmd)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), stringx.TrimChar(text, target, s))
		return err
	})

	return cmd
}

func newDropCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Remove the first --count characters",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().IntVar(&count, "count", 1, "number of characters to remove")

	cmd.RunE = a.run("drop", func(cmd *cobra.Command, args []string) error {
		text, err := a.inputText(cmd)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), stringx.RemoveFirstN(text, count))
		return err
	})

	return cmd
}
