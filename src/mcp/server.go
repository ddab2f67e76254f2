package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"unterm-agent/src/patterns"
	"unterm-agent/src/pipeline"
	"unterm-agent/src/sanitize"
)

// Server exposes the cleaning pipeline over the Model Context Protocol
// so agent hosts can sanitize terminal output without shelling out.
type Server struct {
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server.
func NewServer(version string) *Server {
	s := server.NewMCPServer(
		"unterm",
		version,
		server.WithToolCapabilities(true),
	)

	srv := &Server{mcpServer: s}
	srv.registerTools()

	return srv
}

// registerTools registers all available tools.
func (s *Server) registerTools() {
	textTool := mcp.NewTool("clean_text",
		mcp.WithDescription("Strip ANSI escape sequences and replace Unicode box-drawing glyphs with ASCII equivalents in the given text. Returns the cleaned text."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Raw text to clean, possibly containing ANSI escapes and box-drawing characters"),
		),
		mcp.WithBoolean("mask",
			mcp.Description("Also mask volatile tokens such as timestamps, UUIDs and hex hashes (default: false)"),
		),
	)

	fileTool := mcp.NewTool("clean_file",
		mcp.WithDescription("Clean a .txt file on disk and write the result next to it as <name>_output.txt. Returns a JSON summary of the run."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the input .txt file"),
		),
		mcp.WithBoolean("mask",
			mcp.Description("Also mask volatile tokens such as timestamps, UUIDs and hex hashes (default: false)"),
		),
	)

	s.mcpServer.AddTool(textTool, s.handleCleanText)
	s.mcpServer.AddTool(fileTool, s.handleCleanFile)
}

// Run starts the MCP server on stdio.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

// handleCleanText handles the clean_text tool call.
func (s *Server) handleCleanText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("text", "")
	if text == "" {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	cleaned := sanitize.Clean(text)
	if request.GetBool("mask", false) {
		cleaned = patterns.Mask(cleaned)
	}

	return mcp.NewToolResultText(cleaned), nil
}

// handleCleanFile handles the clean_file tool call.
func (s *Server) handleCleanFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("path", "")
	if path == "" {
		return mcp.NewToolResultError("path parameter is required"), nil
	}

	run, err := pipeline.RunLocal(path, pipeline.LocalOptions{
		Mask: request.GetBool("mask", false),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cleaning failed: %v", err)), nil
	}

	jsonBytes, err := json.Marshal(run)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal run summary: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}
