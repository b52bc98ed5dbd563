package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/AnderssonElin/nba-dashboard/internal/contract"
	"github.com/AnderssonElin/nba-dashboard/schema"
)

// currentCacheVersion defines the version of the cached payload encoding.
const currentCacheVersion = 1

// Cache staleness bounds. Play-by-play and box scores for finished games
// never change, but the recent-games window shifts as new games finish, so
// it gets a much shorter lifetime.
const (
	recentGamesTTL = contract.CacheGranularity
	gameDataTTL    = 7 * 24 * time.Hour
)

// CachedStatsClient wraps a StatsClient with a persistent response cache.
// Cache failures always fall through to the underlying client.
type CachedStatsClient struct {
	client contract.StatsClient
	mgr    contract.CacheManager
}

// NewCachedStatsClient returns a StatsClient that serves responses from the
// manager's response store when possible.
func NewCachedStatsClient(client contract.StatsClient, mgr contract.CacheManager) *CachedStatsClient {
	return &CachedStatsClient{client: client, mgr: mgr}
}

// RecentGames implements contract.StatsClient. The key is bucketed to the
// cache granularity so a fresh window is fetched as time moves on.
func (c *CachedStatsClient) RecentGames(ctx context.Context, window int) ([]schema.RecentGameLine, error) {
	bucket := time.Now().Truncate(contract.CacheGranularity).Unix()
	key := generateCacheKey("recent_games", fmt.Sprintf("%d", window), fmt.Sprintf("%d", bucket))
	return cachedFetch(c.mgr.GetResponseStore(), key, recentGamesTTL, func() ([]schema.RecentGameLine, error) {
		return c.client.RecentGames(ctx, window)
	})
}

// PlayByPlay implements contract.StatsClient.
func (c *CachedStatsClient) PlayByPlay(ctx context.Context, gameID string) ([]schema.PlayEvent, error) {
	key := generateCacheKey("play_by_play", gameID)
	return cachedFetch(c.mgr.GetResponseStore(), key, gameDataTTL, func() ([]schema.PlayEvent, error) {
		return c.client.PlayByPlay(ctx, gameID)
	})
}

// BoxScore implements contract.StatsClient.
func (c *CachedStatsClient) BoxScore(ctx context.Context, gameID string) ([]schema.BoxScoreLine, error) {
	key := generateCacheKey("box_score", gameID)
	return cachedFetch(c.mgr.GetResponseStore(), key, gameDataTTL, func() ([]schema.BoxScoreLine, error) {
		return c.client.BoxScore(ctx, gameID)
	})
}

// cachedFetch retrieves rows from the store when a fresh, version-matched
// entry exists, and otherwise fetches and stores them.
func cachedFetch[T any](store contract.CacheStore, key string, ttl time.Duration, fetch func() ([]T, error)) ([]T, error) {
	if store == nil {
		return fetch()
	}

	if data, version, ts, err := store.Get(key); err == nil && version == currentCacheVersion {
		if time.Since(time.Unix(ts, 0)) <= ttl {
			var rows []T
			if err := json.Unmarshal(data, &rows); err == nil {
				return rows, nil
			}
		}
	}

	rows, err := fetch()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(rows); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}
	return rows, nil
}

// generateCacheKey creates a unique key from the endpoint name and its
// request parameters.
func generateCacheKey(parts ...string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(strings.Join(parts, ":"))))
}
