// Package server exposes a calculator Machine as MCP tools over stdio.
package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/comalice/calcx"
	"github.com/comalice/calcx/internal/keypad"
	"github.com/comalice/calcx/internal/production"
)

// Name and Version are reported to MCP clients.
const (
	Name    = "calcx"
	Version = "0.1.0"
)

// Tool names
const (
	ToolPress = "calculator_press"
	ToolState = "calculator_state"
	ToolReset = "calculator_reset"
)

// CalculatorServer serves one calculator Machine.
type CalculatorServer struct {
	mcpServer *server.MCPServer
	machine   *calcx.Machine
	renderer  *production.TextRenderer
	logger    *zap.Logger
}

// NewCalculatorServer creates a server for m and registers its tools.
func NewCalculatorServer(m *calcx.Machine, logger *zap.Logger) *CalculatorServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CalculatorServer{
		mcpServer: server.NewMCPServer(Name, Version),
		machine:   m,
		renderer:  &production.TextRenderer{},
		logger:    logger,
	}
	s.registerTools()
	return s
}

// Start serves MCP over stdio until the client disconnects.
func (s *CalculatorServer) Start(ctx context.Context) error {
	s.logger.Info("starting MCP server", zap.String("machine_id", s.machine.ID()))
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}
	return nil
}

func (s *CalculatorServer) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(ToolPress,
		mcp.WithDescription("Press calculator keys in order and return the display. "+
			"Keys: 0-9 . ± % ÷ × − + = AC C back"),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Whitespace separated key labels, e.g. \"7 + 3 =\"")),
	), s.handlePress)

	s.mcpServer.AddTool(mcp.NewTool(ToolState,
		mcp.WithDescription("Return the calculator state as JSON"),
	), s.handleState)

	s.mcpServer.AddTool(mcp.NewTool(ToolReset,
		mcp.WithDescription("Clear everything (AC) and return the display"),
	), s.handleReset)
}

func (s *CalculatorServer) handlePress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := mcp.ParseString(req, "keys", "")
	labels := keypad.Fields(keys)
	if len(labels) == 0 {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	st, err := keypad.Press(ctx, s.machine, labels...)
	if err != nil {
		s.logger.Debug("press failed", zap.String("keys", keys), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press keys: %v (display %s)", err, st.DisplayText)), nil
	}
	return mcp.NewToolResultText(st.DisplayText), nil
}

func (s *CalculatorServer) handleState(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := s.renderer.ExportJSON(s.machine.State())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to export state: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *CalculatorServer) handleReset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st := s.machine.Reset(ctx)
	return mcp.NewToolResultText(st.DisplayText), nil
}
