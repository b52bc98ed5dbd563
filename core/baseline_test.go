package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnderssonElin/nba-dashboard/schema"
)

// TestBuildBaseline verifies maxima and distinct game counting.
func TestBuildBaseline(t *testing.T) {
	rows := []schema.RecentGameLine{
		{GameID: "g1", TeamAbbr: "LAL", FGPct: 0.48, FG3Pct: 0.35},
		{GameID: "g1", TeamAbbr: "BOS", FGPct: 0.52, FG3Pct: 0.41},
		{GameID: "g2", TeamAbbr: "GSW", FGPct: 0.44, FG3Pct: 0.50},
		{GameID: "g2", TeamAbbr: "DEN", FGPct: 0.55, FG3Pct: 0.30},
	}

	baseline := BuildBaseline(rows)
	assert.InDelta(t, 0.55, baseline.MaxFGPct, 0.001)
	assert.InDelta(t, 0.50, baseline.MaxFG3Pct, 0.001)
	assert.Equal(t, 2, baseline.Games)
}

// TestBuildBaselineEmpty verifies the zero baseline for no rows.
func TestBuildBaselineEmpty(t *testing.T) {
	baseline := BuildBaseline(nil)
	assert.Zero(t, baseline.MaxFGPct)
	assert.Zero(t, baseline.MaxFG3Pct)
	assert.Zero(t, baseline.Games)
}

// TestSelectRecentGames verifies per-game collapsing and the limit.
func TestSelectRecentGames(t *testing.T) {
	rows := []schema.RecentGameLine{
		{GameID: "g1", GameDate: "2026-03-02", Matchup: "LAL @ BOS", TeamAbbr: "LAL"},
		{GameID: "g1", GameDate: "2026-03-02", Matchup: "BOS vs. LAL", TeamAbbr: "BOS"},
		{GameID: "g2", GameDate: "2026-03-01", Matchup: "GSW @ DEN", TeamAbbr: "GSW"},
		{GameID: "g2", GameDate: "2026-03-01", Matchup: "DEN vs. GSW", TeamAbbr: "DEN"},
		{GameID: "g3", GameDate: "2026-02-28", Matchup: "MIA @ NYK", TeamAbbr: "MIA"},
	}

	t.Run("collapses team rows preserving order", func(t *testing.T) {
		games := SelectRecentGames(rows, 10)
		assert.Len(t, games, 3)
		assert.Equal(t, "g1", games[0].GameID)
		assert.Equal(t, "LAL @ BOS", games[0].Matchup)
		assert.Equal(t, "g2", games[1].GameID)
		assert.Equal(t, "g3", games[2].GameID)
	})

	t.Run("away label wins when home row comes first", func(t *testing.T) {
		games := SelectRecentGames([]schema.RecentGameLine{
			{GameID: "g1", GameDate: "2026-03-02", Matchup: "BOS vs. LAL", TeamAbbr: "BOS"},
			{GameID: "g1", GameDate: "2026-03-02", Matchup: "LAL @ BOS", TeamAbbr: "LAL"},
		}, 10)
		assert.Len(t, games, 1)
		assert.Equal(t, "LAL @ BOS", games[0].Matchup)
	})

	t.Run("home label kept when no away row exists", func(t *testing.T) {
		games := SelectRecentGames([]schema.RecentGameLine{
			{GameID: "g1", GameDate: "2026-03-02", Matchup: "BOS vs. LAL", TeamAbbr: "BOS"},
		}, 10)
		assert.Len(t, games, 1)
		assert.Equal(t, "BOS vs. LAL", games[0].Matchup)
	})

	t.Run("away row past the limit still upgrades an included game", func(t *testing.T) {
		games := SelectRecentGames([]schema.RecentGameLine{
			{GameID: "g1", GameDate: "2026-03-02", Matchup: "BOS vs. LAL", TeamAbbr: "BOS"},
			{GameID: "g2", GameDate: "2026-03-01", Matchup: "GSW @ DEN", TeamAbbr: "GSW"},
			{GameID: "g1", GameDate: "2026-03-02", Matchup: "LAL @ BOS", TeamAbbr: "LAL"},
		}, 2)
		assert.Len(t, games, 2)
		assert.Equal(t, "LAL @ BOS", games[0].Matchup)
		assert.Equal(t, "GSW @ DEN", games[1].Matchup)
	})

	t.Run("limit stops at distinct games", func(t *testing.T) {
		games := SelectRecentGames(rows, 2)
		assert.Len(t, games, 2)
		assert.Equal(t, "g1", games[0].GameID)
		assert.Equal(t, "g2", games[1].GameID)
	})

	t.Run("empty rows", func(t *testing.T) {
		assert.Empty(t, SelectRecentGames(nil, 5))
	})
}
