package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/AnderssonElin/nba-dashboard/core"
	"github.com/AnderssonElin/nba-dashboard/internal/contract"
	"github.com/AnderssonElin/nba-dashboard/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.StatsClient
	mgr     contract.CacheManager
}

func (h *toolHandler) handleGetExcitingGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.GameIDs = nil
	if r := request.GetInt("recent", 0); r > 0 && r <= contract.MaxRecentWindow {
		cfg.RecentWindow = r
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	output, err := core.RunBatchAnalysis(ctx, cfg, h.client, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	enriched := schema.EnrichGames(output.Results)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetGameScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gameID := request.GetString("game_id", "")
	if gameID == "" {
		return mcp.NewToolResultError("game_id is required"), nil
	}

	cfg := h.baseCfg.Clone()
	cfg.GameIDs = []string{gameID}
	cfg.ResultLimit = 1
	cfg.Explain = true

	output, err := core.RunBatchAnalysis(ctx, cfg, h.client, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	if len(output.Results) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("no result for game %s", gameID)), nil
	}

	jsonData, _ := json.MarshalIndent(output.Results[0], "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetScoringWeights(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weights := map[string]any{
		"period_weights":   h.baseCfg.Weights.PeriodWeights,
		"max_period_total": h.baseCfg.Weights.MaxPeriodTotal,
		"extra_period":     h.baseCfg.Weights.ExtraPeriod,
		"lead_change":      h.baseCfg.Weights.LeadChange,
		"buzzer_beater":    h.baseCfg.Weights.BuzzerBeater,
		"fg3_pct":          h.baseCfg.Weights.FG3Pct,
		"star_performance": h.baseCfg.Weights.Star,
		"margin":           h.baseCfg.Weights.Margin,
		"total":            h.baseCfg.Weights.Sum(),
	}

	jsonData, _ := json.MarshalIndent(weights, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
