package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bt-tools/btstring/foundation/utils/stringx"
)

func newRandomCmd(a *app) *cobra.Command {
	var (
		length  int
		charset string
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random token",
		Long: `Generate a random token from crypto/rand. Without flags the configured
random.length and random.charset are used; the default alphabet is URL safe.`,
		Args: cobra.NoArgs,
	}
	cmd.Flags().IntVar(&length, "length", 0, "token length in characters (default: random.length)")
	cmd.Flags().StringVar(&charset, "charset", "", "alphabet to draw from (default: random.charset)")

	cmd.RunE = a.run("random", func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("length") {
			length = a.settings.Random.Length
		}
		if !cmd.Flags().Changed("charset") {
			charset = a.settings.Random.Charset
		}

		token, err := stringx.RandomString(length, charset)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	})

	return cmd
}
