// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/AnderssonElin/nba-dashboard/schema"
)

// StatsClient defines the necessary operations against the NBA stats API.
// This allows the core analysis logic to be tested without network access.
type StatsClient interface {
	// RecentGames returns one row per team per finished game for the most
	// recent window of games, newest first.
	RecentGames(ctx context.Context, window int) ([]schema.RecentGameLine, error)

	// PlayByPlay returns the chronological play-by-play rows for a game.
	PlayByPlay(ctx context.Context, gameID string) ([]schema.PlayEvent, error)

	// BoxScore returns the per-player stat lines for a game.
	BoxScore(ctx context.Context, gameID string) ([]schema.BoxScoreLine, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetResponseStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for API response cache storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore defines the interface for tracking scoring runs and storing
// per-game results.
type HistoryStore interface {
	// BeginRun creates a new scoring run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the scoring run with completion data
	EndRun(runID int64, endTime time.Time, totalGames int) error

	// RecordGameScore stores the final scores for one game
	RecordGameScore(runID int64, result schema.GameScoreResult) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns retrieves all scoring runs for export
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllGameScores retrieves all recorded game scores for export
	GetAllGameScores() ([]schema.GameScoreRecord, error)

	// Close closes the underlying connection
	Close() error
}
