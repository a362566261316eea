package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comalice/calcx"
	"github.com/comalice/calcx/internal/keypad"
	"github.com/comalice/calcx/internal/production"
)

func newEvalCmd(root *rootOptions) *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:   "eval KEY...",
		Short: "Press keys in order and print the display",
		Example: `  calcx eval 7 + 3 =
  calcx eval "1 ÷ 0 ="`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := calcx.NewMachine(
				calcx.WithLogger(root.logger),
				calcx.WithRenderer(&production.TextRenderer{}),
			)
			st, err := keypad.Press(cmd.Context(), m, keypad.Fields(strings.Join(args, " "))...)
			if err != nil {
				return err
			}
			if render {
				fmt.Fprint(cmd.OutOrStdout(), m.Render())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.DisplayText)
			return nil
		},
	}
	cmd.Flags().BoolVar(&render, "render", false, "Print the display and keypad instead of the display text")
	return cmd
}
