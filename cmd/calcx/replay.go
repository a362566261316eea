package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comalice/calcx"
	"github.com/comalice/calcx/internal/tape"
)

func newReplayCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "replay FILE...",
		Short: "Replay YAML or JSON key tapes and check their expected displays",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				t, err := tape.Load(path)
				if err != nil {
					return err
				}
				m := calcx.NewMachine(calcx.WithLogger(root.logger.With(zap.String("tape", t.Name))))
				results, err := tape.Run(cmd.Context(), m, t)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%d steps)\n", path, len(results))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d tapes failed", failed, len(args))
			}
			return nil
		},
	}
}
