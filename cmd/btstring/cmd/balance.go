package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newBalanceCmd(a *app) *cobra.Command {
	var (
		groups int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Split text into groups with balanced word counts",
		Long: `Split the input into --groups consecutive parts whose word counts differ
by at most one. Concatenating the parts gives back the input.`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().IntVarP(&groups, "groups", "n", 0, "number of groups (default: split.default_groups)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the groups as a JSON array")

	cmd.RunE = a.run("balance", func(cmd *cobra.Command, args []string) error {
		text, err := a.inputText(cmd)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("groups") {
			groups = a.settings.Split.DefaultGroups
		}

		parts, err := a.settings.Splitter().Split(text, groups)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetEscapeHTML(false)
			return enc.Encode(parts)
		}

		styles := newListStyles(out)
		for i, part := range parts {
			index := styles.index.Render(fmt.Sprintf("[%d]", i))
			if _, err := fmt.Fprintf(out, "%s %s\n", index, styles.value.Render(strconv.Quote(part))); err != nil {
				return err
			}
		}
		return nil
	})

	return cmd
}
