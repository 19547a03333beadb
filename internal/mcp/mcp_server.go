// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/TANJUMAJERIN/testsmellRank/internal/contract"
)

// NewMCPServer initializes and configures the testsmellRank MCP server
// without starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Test Smell Ranking Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: rank_test_smells ---
	s.AddTool(mcp.NewTool("rank_test_smells",
		mcp.WithDescription("Rank test smell types by their correlation with change-prone and fault-prone git history."),
		mcp.WithString("smells_file", mcp.Description("Path to the JSON file of detected smell occurrences."), mcp.Required()),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to the configured repository if not specified).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of ranked smell types returned.")),
	), h.handleRankTestSmells)

	// --- 2. Tool: get_run_history ---
	s.AddTool(mcp.NewTool("get_run_history",
		mcp.WithDescription("Fetch previously stored analysis runs from the run-history store."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of runs returned.")),
	), h.handleGetRunHistory)

	return s
}

// StartMCPServer starts the testsmellRank MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
