package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func toolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestCleanText(t *testing.T) {
	srv := NewServer("test")

	req := toolRequest(map[string]any{
		"text": "\x1b[32m├── file\x1b[0m",
	})

	result, err := srv.handleCleanText(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got error result: %s", resultText(t, result))
	}

	if got := resultText(t, result); got != "+-- file" {
		t.Errorf("expected '+-- file', got %q", got)
	}
}

func TestCleanText_MissingText(t *testing.T) {
	srv := NewServer("test")

	result, err := srv.handleCleanText(context.Background(), toolRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for missing text parameter")
	}
}

func TestCleanText_Mask(t *testing.T) {
	srv := NewServer("test")

	req := toolRequest(map[string]any{
		"text": "done at 2024-01-02T15:04:05Z",
		"mask": true,
	})

	result, err := srv.handleCleanText(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := resultText(t, result); got != "done at <TIMESTAMP>" {
		t.Errorf("expected masked timestamp, got %q", got)
	}
}

func TestCleanFile_MissingPath(t *testing.T) {
	srv := NewServer("test")

	result, err := srv.handleCleanFile(context.Background(), toolRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for missing path parameter")
	}
}
