package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/TANJUMAJERIN/testsmellRank/core"
	"github.com/TANJUMAJERIN/testsmellRank/internal/contract"
	"github.com/TANJUMAJERIN/testsmellRank/internal/store"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

func (h *toolHandler) handleRankTestSmells(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	smellsFile := request.GetString("smells_file", "")
	if smellsFile == "" {
		return mcp.NewToolResultError("smells_file is required"), nil
	}

	smells, err := contract.LoadSmells(smellsFile)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid smells input: %v", err)), nil
	}

	result := core.Analyze(ctx, cfg, h.client, smells)

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRunHistory(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rs, err := store.NewRunStore(h.baseCfg.StoreBackend, h.baseCfg.StoreDBConnect)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to open run store: %v", err)), nil
	}
	defer func() { _ = rs.Close() }()

	limit := request.GetInt("limit", 0)
	runs, err := rs.FetchRuns(limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch runs: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(runs, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
