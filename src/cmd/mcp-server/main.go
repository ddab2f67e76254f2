// Package main provides the MCP server entry point for unterm.
// This server implements the Model Context Protocol, exposing the
// clean_text and clean_file tools over stdio.
package main

import (
	"log"

	"unterm-agent/src/mcp"
)

const version = "1.0.0"

func main() {
	server := mcp.NewServer(version)

	if err := server.Run(); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
