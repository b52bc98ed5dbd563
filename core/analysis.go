package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AnderssonElin/nba-dashboard/internal/contract"
	"github.com/AnderssonElin/nba-dashboard/schema"
)

// RunBatchAnalysis fetches the recent-games window, scores the requested
// games with a worker pool, records run history if configured, and returns
// the ranked results along with the baseline used for normalization.
//
// With explicit game IDs in the config, only those games are scored; the
// recent window is still fetched because it supplies the shooting baseline
// and game metadata. Otherwise every game in the window is scored.
func RunBatchAnalysis(ctx context.Context, cfg *contract.Config, client contract.StatsClient, mgr contract.CacheManager) (*schema.BatchAnalysisOutput, error) {
	recent, err := client.RecentGames(ctx, cfg.RecentWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent games: %w", err)
	}
	baseline := BuildBaseline(recent)

	games := selectTargetGames(cfg, recent)
	if len(games) == 0 {
		return nil, errors.New("no games found")
	}

	// --- Begin Run Tracking (if configured) ---
	var runID int64
	history := mgr.GetHistoryStore()
	if history != nil {
		configParams := map[string]any{
			"recent":       cfg.RecentWindow,
			"workers":      cfg.Workers,
			"result_limit": cfg.ResultLimit,
			"game_ids":     len(cfg.GameIDs),
		}
		runID, err = history.BeginRun(time.Now(), configParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
		}
	}

	results := analyzeGames(ctx, cfg, client, games, baseline)

	// --- End Run Tracking ---
	if history != nil && runID > 0 {
		for _, r := range results {
			if err := history.RecordGameScore(runID, r); err != nil {
				contract.LogWarn(fmt.Sprintf("Run tracking failed for game %s", r.GameID), err)
			}
		}
		if err := history.EndRun(runID, time.Now(), len(results)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	return &schema.BatchAnalysisOutput{
		Results:  rankGames(results, cfg.ResultLimit),
		Baseline: baseline,
	}, nil
}

// selectTargetGames resolves which games to score. Explicit IDs use window
// metadata when available and a bare entry otherwise, so a game outside the
// window can still be scored.
func selectTargetGames(cfg *contract.Config, recent []schema.RecentGameLine) []schema.GameMeta {
	if len(cfg.GameIDs) == 0 {
		return SelectRecentGames(recent, cfg.RecentWindow)
	}

	byID := make(map[string]schema.GameMeta)
	for _, meta := range SelectRecentGames(recent, len(recent)) {
		byID[meta.GameID] = meta
	}

	games := make([]schema.GameMeta, 0, len(cfg.GameIDs))
	for _, id := range cfg.GameIDs {
		if meta, ok := byID[id]; ok {
			games = append(games, meta)
		} else {
			games = append(games, schema.GameMeta{GameID: id})
		}
	}
	return games
}

// analyzeGames processes all games in parallel using a worker pool.
// It spawns cfg.Workers goroutines to fetch and score games concurrently
// and aggregates their results into a single slice.
func analyzeGames(ctx context.Context, cfg *contract.Config, client contract.StatsClient, games []schema.GameMeta, baseline schema.RecentBaseline) []schema.GameScoreResult {
	gameCh := make(chan schema.GameMeta, len(games))
	resultCh := make(chan schema.GameScoreResult, len(games))
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Go(func() {
			for meta := range gameCh {
				resultCh <- analyzeGameRemote(ctx, cfg, client, meta, baseline)
			}
		})
	}

	for _, g := range games {
		gameCh <- g
	}
	close(gameCh)

	wg.Wait()
	close(resultCh)

	results := make([]schema.GameScoreResult, 0, len(games))
	for r := range resultCh {
		results = append(results, r)
	}
	return results
}

// analyzeGameRemote fetches the raw tables for one game and scores them.
// Fetch failures are logged and degrade to an N/A or partially scored
// result, so the batch keeps going.
func analyzeGameRemote(ctx context.Context, cfg *contract.Config, client contract.StatsClient, meta schema.GameMeta, baseline schema.RecentBaseline) schema.GameScoreResult {
	events, err := client.PlayByPlay(ctx, meta.GameID)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("Play-by-play fetch failed for game %s", meta.GameID), err)
		events = nil
	}

	box, err := client.BoxScore(ctx, meta.GameID)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("Box score fetch failed for game %s", meta.GameID), err)
		box = nil
	}

	return AnalyzeGame(cfg, meta, events, box, baseline)
}
