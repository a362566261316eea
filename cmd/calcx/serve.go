package main

import (
	"github.com/spf13/cobra"

	"github.com/comalice/calcx"
	"github.com/comalice/calcx/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as MCP tools over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := calcx.NewMachine(calcx.WithLogger(root.logger))
			defer m.Close()
			return server.NewCalculatorServer(m, root.logger).Start(cmd.Context())
		},
	}
}
