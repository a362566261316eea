package main

import (
	"bufio"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comalice/calcx"
	"github.com/comalice/calcx/internal/keypad"
	"github.com/comalice/calcx/internal/production"
)

func newReplCmd(root *rootOptions) *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read key sequences from stdin, one line at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []calcx.Option{
				calcx.WithLogger(root.logger),
				calcx.WithRenderer(&production.TextRenderer{}),
			}

			var wg sync.WaitGroup
			if trace {
				ch := make(chan calcx.Transition, 64)
				opts = append(opts, calcx.WithPublisher(production.NewChannelPublisher(ch)))
				wg.Add(1)
				go func() {
					defer wg.Done()
					for t := range ch {
						root.logger.Info("transition",
							zap.String("action", t.Action),
							zap.String("before", t.Before.DisplayText),
							zap.String("after", t.After.DisplayText),
						)
					}
				}()
			}

			m := calcx.NewMachine(opts...)
			defer func() {
				_ = m.Close()
				wg.Wait()
			}()

			out := cmd.OutOrStdout()
			fmt.Fprint(out, m.Render())

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				switch line {
				case "":
					continue
				case "quit", "exit":
					return nil
				}
				if _, err := keypad.Press(cmd.Context(), m, keypad.Fields(line)...); err != nil {
					fmt.Fprintln(out, "error:", err)
				}
				fmt.Fprint(out, m.Render())
			}
			return scanner.Err()
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "Log every transition at info level")
	return cmd
}
