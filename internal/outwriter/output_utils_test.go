package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnderssonElin/nba-dashboard/internal/contract"
	"github.com/AnderssonElin/nba-dashboard/schema"
)

// TestCreateFormatters verifies precision handling.
func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)
	assert.Equal(t, "3.14", fmtFloat(3.14159))
	assert.Equal(t, "%d", intFmt)

	fmtFloat, _ = createFormatters(0)
	assert.Equal(t, "3", fmtFloat(3.14159))
}

// TestTruncateMatchup verifies truncation with ellipsis.
func TestTruncateMatchup(t *testing.T) {
	tests := []struct {
		name     string
		matchup  string
		maxLen   int
		expected string
	}{
		{name: "fits", matchup: "LAL @ BOS", maxLen: 11, expected: "LAL @ BOS"},
		{name: "exact", matchup: "LAL @ BOS", maxLen: 9, expected: "LAL @ BOS"},
		{name: "truncated", matchup: "LAL @ BOS overtime special", maxLen: 12, expected: "LAL @ BOS..."},
		{name: "tiny max", matchup: "LAL @ BOS", maxLen: 3, expected: "LAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateMatchup(tt.matchup, tt.maxLen))
		})
	}
}

// TestGetMaxTableMatchupWidth verifies the width override and the clamps.
func TestGetMaxTableMatchupWidth(t *testing.T) {
	t.Run("wide override clamps to max", func(t *testing.T) {
		cfg := &contract.Config{Width: 200}
		assert.Equal(t, 30, getMaxTableMatchupWidth(cfg))
	})

	t.Run("narrow override clamps to min", func(t *testing.T) {
		cfg := &contract.Config{Width: 40}
		assert.Equal(t, 11, getMaxTableMatchupWidth(cfg))
	})

	t.Run("detail columns shrink the matchup", func(t *testing.T) {
		wide := getMaxTableMatchupWidth(&contract.Config{Width: 140})
		detail := getMaxTableMatchupWidth(&contract.Config{Width: 140, Detail: true})
		assert.Greater(t, wide, detail)
	})

	t.Run("explain column shrinks the matchup", func(t *testing.T) {
		wide := getMaxTableMatchupWidth(&contract.Config{Width: 100})
		explain := getMaxTableMatchupWidth(&contract.Config{Width: 100, Explain: true})
		assert.GreaterOrEqual(t, wide, explain)
	})
}

// TestFormatTopComponentBreakdown verifies component naming and ordering.
func TestFormatTopComponentBreakdown(t *testing.T) {
	tests := []struct {
		name      string
		breakdown map[schema.BreakdownKey]float64
		expected  string
	}{
		{
			name:     "no breakdown",
			expected: "Not applicable",
		},
		{
			name:      "all zeros",
			breakdown: map[schema.BreakdownKey]float64{schema.BreakdownPeriods: 0, schema.BreakdownMargin: 0},
			expected:  "Not applicable",
		},
		{
			name: "sorted by contribution",
			breakdown: map[schema.BreakdownKey]float64{
				schema.BreakdownPeriods: 50,
				schema.BreakdownMargin:  25,
				schema.BreakdownStar:    10,
				schema.BreakdownFG3:     4,
			},
			expected: "periods > margin > star",
		},
		{
			name: "fewer than three components",
			breakdown: map[schema.BreakdownKey]float64{
				schema.BreakdownMargin: 25,
				schema.BreakdownStar:   10,
			},
			expected: "margin > star",
		},
		{
			name: "ties break on name",
			breakdown: map[schema.BreakdownKey]float64{
				schema.BreakdownStar:   10,
				schema.BreakdownMargin: 10,
				schema.BreakdownFG3:    10,
			},
			expected: "fg3 > margin > star",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &schema.GameScoreResult{Breakdown: tt.breakdown}
			assert.Equal(t, tt.expected, formatTopComponentBreakdown(r))
		})
	}
}

// TestWriteJSON verifies indented encoding.
func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"answer": 42})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"answer\": 42")
}

// TestWriteCSVResultsForGames verifies the header and a data row.
func TestWriteCSVResultsForGames(t *testing.T) {
	games := []schema.EnrichedGameResult{
		{Rank: 1, GameScoreResult: schema.GameScoreResult{
			GameID:        "0022300001",
			GameDate:      "2026-03-01",
			Matchup:       "LAL @ BOS",
			TotalScore:    89,
			Grade:         schema.GradeA,
			PeriodScore:   50,
			MarginScore:   25,
			StarScore:     10,
			FG3PctScore:   4,
			MaxPoints:     38,
			AverageMargin: 1,
		}},
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat, intFmt := createFormatters(2)
	require.NoError(t, writeCSVResultsForGames(w, games, fmtFloat, intFmt))
	w.Flush()

	reader := csv.NewReader(bytes.NewReader(buf.Bytes()))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "rank", records[0][0])
	assert.Equal(t, "average_margin", records[0][len(records[0])-1])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "0022300001", records[1][1])
	assert.Equal(t, "89.00", records[1][4])
	assert.Equal(t, "A", records[1][5])
	assert.Equal(t, "38", records[1][16])
}

// TestWriteGameTable smoke-tests the human-readable table output.
func TestWriteGameTable(t *testing.T) {
	cfg := &contract.Config{
		Precision: 2,
		Workers:   4,
		Width:     120,
		Output:    schema.TextOut,
	}
	games := []schema.EnrichedGameResult{
		{Rank: 1, GameScoreResult: schema.GameScoreResult{
			GameID: "0022300001", GameDate: "2026-03-01", Matchup: "LAL @ BOS",
			TotalScore: 89, Grade: schema.GradeA,
		}},
	}
	baseline := schema.RecentBaseline{MaxFG3Pct: 0.5, Games: 20}

	var buf bytes.Buffer
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	err := writeGameTable(games, baseline, cfg, fmtFloat, intFmt, 0, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "0022300001")
	assert.Contains(t, out, "LAL @ BOS")
	assert.Contains(t, out, "89.00")
	assert.Contains(t, out, "Showing 1 games (baseline: 20 recent games, max FG3%: 0.50)")
}

// TestBuildWeightRows verifies ordering and coverage of the weight listing.
func TestBuildWeightRows(t *testing.T) {
	rows := buildWeightRows(schema.DefaultWeightConfig())

	// Four period rows followed by the seven component rows.
	require.Len(t, rows, 11)
	assert.Equal(t, "period_q1", rows[0].Component)
	assert.Equal(t, "period_q4", rows[3].Component)
	assert.Equal(t, "max_period_total", rows[4].Component)
	assert.Equal(t, "margin", rows[10].Component)
	assert.InDelta(t, 0.25, rows[10].Weight, 0.001)
}

// TestWriteWeightRowsJSON verifies the weight rows serialize cleanly.
func TestWriteWeightRowsJSON(t *testing.T) {
	rows := buildWeightRows(schema.DefaultWeightConfig())

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, rows))

	var decoded []weightRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, 11)
}
