package core

import (
	"strings"

	"github.com/AnderssonElin/nba-dashboard/schema"
)

// BuildBaseline computes the rolling normalization maxima from the
// recent-games rows. The result is shared read-only across analysis
// workers for the duration of a batch.
func BuildBaseline(rows []schema.RecentGameLine) schema.RecentBaseline {
	baseline := schema.RecentBaseline{}
	seen := make(map[string]struct{})
	for _, row := range rows {
		if row.FGPct > baseline.MaxFGPct {
			baseline.MaxFGPct = row.FGPct
		}
		if row.FG3Pct > baseline.MaxFG3Pct {
			baseline.MaxFG3Pct = row.FG3Pct
		}
		seen[row.GameID] = struct{}{}
	}
	baseline.Games = len(seen)
	return baseline
}

// SelectRecentGames collapses the per-team rows into one GameMeta per game,
// preserving feed order (newest first), and truncates to limit. Each game
// finder row describes the game from one team's side; the away side's
// "AWY @ HOM" label is preferred over the home side's "HOM vs. AWY" label
// regardless of which row the feed lists first.
func SelectRecentGames(rows []schema.RecentGameLine, limit int) []schema.GameMeta {
	var games []schema.GameMeta
	index := make(map[string]int)
	for _, row := range rows {
		if i, ok := index[row.GameID]; ok {
			if !strings.Contains(games[i].Matchup, "@") && strings.Contains(row.Matchup, "@") {
				games[i].Matchup = row.Matchup
			}
			continue
		}
		if limit >= 0 && len(games) == limit {
			// Full, but keep scanning: a later away row may still
			// upgrade the label of an included game.
			continue
		}
		index[row.GameID] = len(games)
		games = append(games, schema.GameMeta{
			GameID:   row.GameID,
			GameDate: row.GameDate,
			Matchup:  row.Matchup,
		})
	}
	return games
}
