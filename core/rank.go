package core

import (
	"sort"

	"github.com/AnderssonElin/nba-dashboard/schema"
)

// rankGames sorts games by their total score in descending order and
// returns the top 'limit' games. Ties break on game ID so repeated runs
// produce the same ordering.
func rankGames(results []schema.GameScoreResult, limit int) []schema.GameScoreResult {
	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalScore != results[j].TotalScore {
			return results[i].TotalScore > results[j].TotalScore
		}
		return results[i].GameID < results[j].GameID
	})
	if len(results) > limit {
		return results[:limit]
	}
	return results
}
