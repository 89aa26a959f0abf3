// Package mcp exposes the layerlint audits over the Model Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewLayerlintMCPServer creates an MCP server with the layerlint audit tools
// registered. The projectPath is the root of the project to audit.
func NewLayerlintMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"layerlint",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
