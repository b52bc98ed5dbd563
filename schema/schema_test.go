package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEnrichGames verifies ranks are assigned in order.
func TestEnrichGames(t *testing.T) {
	results := []GameScoreResult{
		{GameID: "g1", TotalScore: 90},
		{GameID: "g2", TotalScore: 75},
	}

	enriched := EnrichGames(results)
	assert.Len(t, enriched, 2)
	assert.Equal(t, 1, enriched[0].Rank)
	assert.Equal(t, "g1", enriched[0].GameID)
	assert.Equal(t, 2, enriched[1].Rank)

	assert.Empty(t, EnrichGames(nil))
}

// TestAllBreakdownKeys verifies the display list covers every component once.
func TestAllBreakdownKeys(t *testing.T) {
	seen := make(map[BreakdownKey]struct{})
	for _, key := range AllBreakdownKeys {
		seen[key] = struct{}{}
	}
	assert.Len(t, seen, len(AllBreakdownKeys))
	assert.Contains(t, seen, BreakdownPeriods)
	assert.Contains(t, seen, BreakdownMargin)
}
