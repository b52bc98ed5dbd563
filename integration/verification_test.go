//go:build integration

// Package integration contains integration tests for nbadash.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
// Or use: make test-integration
package integration

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weightEntry mirrors one row of nbadash weights --output json.
type weightEntry struct {
	Component string  `json:"component"`
	Weight    float64 `json:"weight"`
}

// scoredGame mirrors one entry of nbadash games --output json.
type scoredGame struct {
	Rank              int     `json:"rank"`
	GameID            string  `json:"game_id"`
	TotalScore        float64 `json:"total_score"`
	Grade             string  `json:"grade"`
	PeriodScore       float64 `json:"period_scores"`
	ExtraPeriodScore  float64 `json:"extra_periods"`
	LeadChangeScore   float64 `json:"lead_changes"`
	BuzzerBeaterScore float64 `json:"buzzer_beater"`
	FG3PctScore       float64 `json:"fg3_pct"`
	StarScore         float64 `json:"star_performance"`
	MarginScore       float64 `json:"margin"`
}

// buildBinary compiles nbadash into a temp location and returns its path.
func buildBinary(t *testing.T) string {
	t.Helper()
	binaryPath := filepath.Join(t.TempDir(), "nbadash")
	buildCmd := exec.Command("go", "build", "-o", binaryPath, ".")
	buildCmd.Dir = ".." // Project root
	err := buildCmd.Run()
	require.NoError(t, err)
	return binaryPath
}

// TestWeightsVerification runs nbadash weights and verifies the defaults:
// no weight is negative, the period weights sum to 1.0, and the period cap
// plus the component weights sum to 1.0 (a perfect game scores 100).
func TestWeightsVerification(t *testing.T) {
	binaryPath := buildBinary(t)

	cmd := exec.Command(binaryPath, "weights", "--output", "json")
	cmd.Dir = ".."
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	require.NoError(t, err)

	var rows []weightEntry
	err = json.Unmarshal(stdout.Bytes(), &rows)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	var periodSum, componentSum float64
	for _, row := range rows {
		if strings.HasPrefix(row.Component, "period_q") {
			periodSum += row.Weight
		} else {
			componentSum += row.Weight
		}
		assert.GreaterOrEqual(t, row.Weight, 0.0, "weight for %s should not be negative", row.Component)
	}

	assert.InDelta(t, 1.0, periodSum, 0.001, "period weights should sum to 1.0")
	assert.InDelta(t, 1.0, componentSum, 0.001, "component weights should sum to 1.0")
}

// TestLiveGamesVerification scores a small window of recent games against
// the live stats API and cross-checks the output invariants: ranks are
// contiguous and best-first, and every total equals the sum of its
// component scores.
func TestLiveGamesVerification(t *testing.T) {
	binaryPath := buildBinary(t)

	cmd := exec.Command(binaryPath, "games", "--recent", "5", "--output", "json", "--cache-backend", "none", "--history-backend", "none")
	cmd.Dir = ".."
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	if err != nil {
		// The stats API throttles aggressively; don't fail the suite on it
		t.Skipf("nbadash games failed (stats API unavailable?): %v", err)
	}

	var games []scoredGame
	err = json.Unmarshal(stdout.Bytes(), &games)
	require.NoError(t, err)
	require.NotEmpty(t, games)

	prevScore := 101.0
	for i, game := range games {
		t.Run(game.GameID, func(t *testing.T) {
			assert.Equal(t, i+1, game.Rank, "ranks should be contiguous and start at 1")
			assert.LessOrEqual(t, game.TotalScore, prevScore, "results should be sorted best-first")
			assert.GreaterOrEqual(t, game.TotalScore, 0.0)
			assert.LessOrEqual(t, game.TotalScore, 100.0)

			componentSum := game.PeriodScore + game.ExtraPeriodScore + game.LeadChangeScore +
				game.BuzzerBeaterScore + game.FG3PctScore + game.StarScore + game.MarginScore
			assert.InDelta(t, game.TotalScore, componentSum, 0.01,
				"total should equal the sum of component scores for %s", game.GameID)

			assert.NotEmpty(t, game.Grade, "every scored game should carry a grade")
		})
		prevScore = game.TotalScore
	}
}
