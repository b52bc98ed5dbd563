// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/AnderssonElin/nba-dashboard/internal/contract"
)

// NewMCPServer initializes and configures the nbadash MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.StatsClient, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"NBA Excitement Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
		mgr:     mgr,
	}

	// --- 1. Tool: get_exciting_games ---
	s.AddTool(mcp.NewTool("get_exciting_games",
		mcp.WithDescription("Score the most recent NBA games for excitement and return them ranked best-first."),
		mcp.WithNumber("recent", mcp.Description("Number of recent finished games to analyze (defaults to the configured window).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetExcitingGames)

	// --- 2. Tool: get_game_score ---
	s.AddTool(mcp.NewTool("get_game_score",
		mcp.WithDescription("Score a single NBA game by its game ID and return the full component breakdown."),
		mcp.WithString("game_id", mcp.Description("The league game ID, e.g. 0022300001."), mcp.Required()),
	), h.handleGetGameScore)

	// --- 3. Tool: get_scoring_weights ---
	s.AddTool(mcp.NewTool("get_scoring_weights",
		mcp.WithDescription("Return the active scoring weight configuration."),
	), h.handleGetScoringWeights)

	return s
}

// StartMCPServer starts the nbadash MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.StatsClient, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, client, mgr)
	return server.ServeStdio(s)
}
