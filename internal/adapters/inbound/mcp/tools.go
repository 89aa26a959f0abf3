package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/layerlint/layerlint/internal/adapters/outbound/gitinfo"
	"github.com/layerlint/layerlint/internal/adapters/outbound/parser"
	"github.com/layerlint/layerlint/internal/adapters/outbound/scanner"
	"github.com/layerlint/layerlint/internal/application"
)

// registerTools registers the audit tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("layerlint_check",
			mcplib.WithDescription("Run the full Clean Architecture audit (dependency rule plus structure checks) and return the report as JSON"),
			mcplib.WithString("path", mcplib.Description("Root path to audit (defaults to the server's project path)")),
		),
		handleAudit(projectPath, application.AllCheckers),
	)

	s.AddTool(
		mcplib.NewTool("layerlint_imports",
			mcplib.WithDescription("Run only the Dependency Rule audit and return the report as JSON"),
			mcplib.WithString("path", mcplib.Description("Root path to audit (defaults to the server's project path)")),
		),
		handleAudit(projectPath, application.ImportCheckers),
	)

	s.AddTool(
		mcplib.NewTool("layerlint_structure",
			mcplib.WithDescription("Run only the structure and convention audits and return the report as JSON"),
			mcplib.WithString("path", mcplib.Description("Root path to audit (defaults to the server's project path)")),
		),
		handleAudit(projectPath, application.StructureCheckers),
	)
}

func handleAudit(projectPath string, checkers func() []application.Checker) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		rootPath := request.GetString("path", projectPath)

		svc := application.NewAuditService(scanner.New(), parser.New(), gitinfo.New())
		report, err := svc.Audit(rootPath, checkers())
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error result with the given message.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
