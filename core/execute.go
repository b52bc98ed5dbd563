package core

import (
	"context"
	"time"

	"github.com/AnderssonElin/nba-dashboard/internal/contract"
	"github.com/AnderssonElin/nba-dashboard/internal/nbastats"
	"github.com/AnderssonElin/nba-dashboard/internal/outwriter"
)

// ExecuteGames runs the batch scoring pipeline and prints the ranked games.
// It serves as the main entry point for the 'games' and 'game' commands.
func ExecuteGames(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	client := NewCachedStatsClient(nbastats.NewClient(), mgr)
	output, err := RunBatchAnalysis(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteGameResults(*output, cfg, duration)
}

// ExecuteWeights prints the active weight configuration.
func ExecuteWeights(cfg *contract.Config) error {
	return outwriter.WriteWeightDefinitions(cfg.Weights, cfg)
}
