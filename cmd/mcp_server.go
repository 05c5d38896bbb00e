package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hyprveil/hyprveil/internal/minimizer"
	"github.com/hyprveil/hyprveil/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// mcpServer wraps the MCP server around one engine instance. The engine is
// stateless between calls (every operation re-reads the state file), so a
// long-lived server sees the same state a fresh CLI invocation would.
type mcpServer struct {
	engine *minimizer.Engine
	mcp    *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates an MCP server with all hyprveil tools registered.
func newMCPServer() *mcpServer {
	s := &mcpServer{engine: newEngine()}
	s.mcp = mcpserver.NewMCPServer("hyprveil", version.Version)
	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("minimize",
			mcp.WithDescription("Hide the focused Hyprland window into the holding workspace"),
		),
		s.handleMinimize,
	)

	s.mcp.AddTool(
		mcp.NewTool("restore",
			mcp.WithDescription("Restore a minimized window onto the active workspace"),
			mcp.WithString("address", mcp.Description("Window address as returned by list"), mcp.Required()),
		),
		s.handleRestore,
	)

	s.mcp.AddTool(
		mcp.NewTool("restore_all",
			mcp.WithDescription("Restore every minimized window, oldest first"),
		),
		s.handleRestoreAll,
	)

	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List minimized windows with their addresses, classes, and titles"),
		),
		s.handleList,
	)
}

func (s *mcpServer) handleMinimize(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, err := s.engine.Minimize()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if rec == nil {
		return mcp.NewToolResultText("no window minimized (skipped or failed, see log)"), nil
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *mcpServer) handleRestore(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address, err := req.RequireString("address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.engine.Restore(address); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("restored " + address), nil
}

func (s *mcpServer) handleRestoreAll(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := s.engine.RestoreAll()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("restored %d windows", n)), nil
}

func (s *mcpServer) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, err := s.engine.List()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
