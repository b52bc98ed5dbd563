package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnderssonElin/nba-dashboard/schema"
)

// TestParseClockSeconds tests game clock parsing.
func TestParseClockSeconds(t *testing.T) {
	tests := []struct {
		name     string
		clock    string
		expected float64
		ok       bool
	}{
		{name: "mid period", clock: "10:30", expected: 630, ok: true},
		{name: "final seconds", clock: "0:24", expected: 24, ok: true},
		{name: "zero", clock: "0:00", expected: 0, ok: true},
		{name: "fractional seconds", clock: "0:05.5", expected: 5.5, ok: true},
		{name: "whitespace", clock: " 1:30 ", expected: 90, ok: true},
		{name: "empty", clock: "", ok: false},
		{name: "garbage", clock: "abc", ok: false},
		{name: "too many parts", clock: "1:30:00", ok: false},
		{name: "negative minutes", clock: "-1:30", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secs, ok := parseClockSeconds(tt.clock)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, secs, 0.001)
			}
		})
	}
}

// TestPeriodCloseness tests the period margin curve.
func TestPeriodCloseness(t *testing.T) {
	tests := []struct {
		name      string
		avgMargin float64
		expected  float64
	}{
		{name: "tied period", avgMargin: 0, expected: 1},
		{name: "close boundary", avgMargin: 7, expected: 1},
		{name: "mid ramp", avgMargin: 13.5, expected: 0.5},
		{name: "blowout boundary", avgMargin: 20, expected: 0},
		{name: "beyond blowout", avgMargin: 30, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, periodCloseness(tt.avgMargin), 0.001)
		})
	}
}

// TestMarginCloseness tests the closing-minutes margin curve.
func TestMarginCloseness(t *testing.T) {
	tests := []struct {
		name      string
		avgMargin float64
		expected  float64
	}{
		{name: "nail biter", avgMargin: 2, expected: 1},
		{name: "close boundary", avgMargin: 5, expected: 1},
		{name: "mid ramp", avgMargin: 10, expected: 0.5},
		{name: "blowout boundary", avgMargin: 15, expected: 0},
		{name: "beyond blowout", avgMargin: 25, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, marginCloseness(tt.avgMargin), 0.001)
		})
	}
}

// TestScorePeriods verifies per-period weighting and the period cap.
func TestScorePeriods(t *testing.T) {
	weights := schema.DefaultWeightConfig()

	t.Run("all periods tied caps at max period total", func(t *testing.T) {
		var events []schema.PlayEvent
		for period := 1; period <= 4; period++ {
			events = append(events, schema.PlayEvent{Period: period, Margin: 0, MarginKnown: true})
		}
		score, avgMargin := scorePeriods(events, weights)
		assert.InDelta(t, weights.MaxPeriodTotal*100, score, 0.001)
		assert.InDelta(t, 0, avgMargin, 0.001)
	})

	t.Run("blowout periods contribute nothing", func(t *testing.T) {
		var events []schema.PlayEvent
		for period := 1; period <= 4; period++ {
			events = append(events, schema.PlayEvent{Period: period, Margin: 30, MarginKnown: true})
		}
		score, avgMargin := scorePeriods(events, weights)
		assert.InDelta(t, 0, score, 0.001)
		assert.InDelta(t, 30, avgMargin, 0.001)
	})

	t.Run("missing periods are skipped", func(t *testing.T) {
		events := []schema.PlayEvent{
			{Period: 1, Margin: 2, MarginKnown: true},
			{Period: 1, Margin: 4, MarginKnown: true},
		}
		score, avgMargin := scorePeriods(events, weights)
		// Only period 1 contributes; average margin is (2+4)/2 = 3, fully close.
		assert.InDelta(t, weights.PeriodWeights[1]*100, score, 0.001)
		assert.InDelta(t, 3, avgMargin, 0.001)
	})

	t.Run("unknown margins are ignored", func(t *testing.T) {
		events := []schema.PlayEvent{
			{Period: 1, Margin: 0, MarginKnown: false},
			{Period: 2, Margin: 0, MarginKnown: false},
		}
		score, avgMargin := scorePeriods(events, weights)
		assert.InDelta(t, 0, score, 0.001)
		assert.InDelta(t, 0, avgMargin, 0.001)
	})
}

// TestScoreExtraPeriods verifies overtime detection and saturation.
func TestScoreExtraPeriods(t *testing.T) {
	tests := []struct {
		name          string
		periods       []int
		wantOvertimes int
		wantScore     float64
	}{
		{name: "regulation only", periods: []int{1, 2, 3, 4}, wantOvertimes: 0, wantScore: 0},
		{name: "single overtime", periods: []int{4, 5, 5}, wantOvertimes: 1, wantScore: 5},
		{name: "double overtime saturates", periods: []int{4, 5, 6}, wantOvertimes: 2, wantScore: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := make([]schema.PlayEvent, 0, len(tt.periods))
			for _, p := range tt.periods {
				events = append(events, schema.PlayEvent{Period: p, MarginKnown: true})
			}
			overtimes, score := scoreExtraPeriods(events, 0.05)
			assert.Equal(t, tt.wantOvertimes, overtimes)
			assert.InDelta(t, tt.wantScore, score, 0.001)
		})
	}
}

// TestScoreLeadChanges verifies sign-flip counting with tie handling.
func TestScoreLeadChanges(t *testing.T) {
	tests := []struct {
		name        string
		margins     []int
		wantChanges int
		wantScore   float64
	}{
		{name: "no events", margins: nil, wantChanges: 0, wantScore: 0},
		{name: "one team leads throughout", margins: []int{2, 5, 8}, wantChanges: 0, wantScore: 0},
		{name: "two flips", margins: []int{2, -1, 3}, wantChanges: 2, wantScore: 2.0 / 12.0 * 5},
		{name: "tie resolved to same leader", margins: []int{2, 0, 3}, wantChanges: 0, wantScore: 0},
		{name: "tie resolved to new leader", margins: []int{2, 0, -1}, wantChanges: 1, wantScore: 1.0 / 12.0 * 5},
		{name: "saturates at twelve", margins: []int{1, -1, 1, -1, 1, -1, 1, -1, 1, -1, 1, -1, 1, -1}, wantChanges: 13, wantScore: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := make([]schema.PlayEvent, 0, len(tt.margins))
			for _, m := range tt.margins {
				events = append(events, schema.PlayEvent{Period: 1, Margin: m, MarginKnown: true})
			}
			changes, score := scoreLeadChanges(events, 0.05)
			assert.Equal(t, tt.wantChanges, changes)
			assert.InDelta(t, tt.wantScore, score, 0.001)
		})
	}
}

// TestScoreBuzzerBeaters verifies late game-deciding shot detection.
func TestScoreBuzzerBeaters(t *testing.T) {
	tests := []struct {
		name        string
		events      []schema.PlayEvent
		wantBeaters int
	}{
		{
			name: "game-tying shot in final seconds",
			events: []schema.PlayEvent{
				{Period: 4, Clock: "5:00", Margin: 2, MarginKnown: true},
				{Period: 4, Clock: "0:10", Margin: 0, MarginKnown: true, Description: "Tatum 12' Jump Shot (30 PTS)"},
			},
			wantBeaters: 1,
		},
		{
			name: "lead-flipping shot in final seconds",
			events: []schema.PlayEvent{
				{Period: 4, Clock: "5:00", Margin: 2, MarginKnown: true},
				{Period: 4, Clock: "0:05", Margin: -1, MarginKnown: true, Description: "James 26' 3PT Jump Shot (41 PTS)"},
			},
			wantBeaters: 1,
		},
		{
			name: "missed attempt at a margin-bearing row does not qualify",
			events: []schema.PlayEvent{
				{Period: 4, Clock: "5:00", Margin: 2, MarginKnown: true},
				{Period: 4, Clock: "0:10", Margin: 0, MarginKnown: true, Description: "MISS Tatum 27' 3PT Jump Shot"},
			},
			wantBeaters: 0,
		},
		{
			name: "blank description defers to the margin change",
			events: []schema.PlayEvent{
				{Period: 4, Clock: "5:00", Margin: 2, MarginKnown: true},
				{Period: 4, Clock: "0:10", Margin: 0, MarginKnown: true},
			},
			wantBeaters: 1,
		},
		{
			name: "late shot that pads the lead",
			events: []schema.PlayEvent{
				{Period: 4, Clock: "5:00", Margin: 2, MarginKnown: true},
				{Period: 4, Clock: "0:10", Margin: 5, MarginKnown: true},
			},
			wantBeaters: 0,
		},
		{
			name: "tying shot outside the window",
			events: []schema.PlayEvent{
				{Period: 4, Clock: "5:00", Margin: 2, MarginKnown: true},
				{Period: 4, Clock: "2:00", Margin: 0, MarginKnown: true},
			},
			wantBeaters: 0,
		},
		{
			name: "first quarter shots never qualify",
			events: []schema.PlayEvent{
				{Period: 1, Clock: "5:00", Margin: 2, MarginKnown: true},
				{Period: 1, Clock: "0:10", Margin: 0, MarginKnown: true},
			},
			wantBeaters: 0,
		},
		{
			name: "overtime shots qualify",
			events: []schema.PlayEvent{
				{Period: 5, Clock: "3:00", Margin: 1, MarginKnown: true},
				{Period: 5, Clock: "0:02", Margin: -2, MarginKnown: true},
			},
			wantBeaters: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			beaters, score := scoreBuzzerBeaters(tt.events, 0.05)
			assert.Equal(t, tt.wantBeaters, beaters)
			if tt.wantBeaters > 0 {
				assert.InDelta(t, 5, score, 0.001)
			} else {
				assert.InDelta(t, 0, score, 0.001)
			}
		})
	}
}

// TestScoreShooting verifies baseline-normalized three-point scoring.
func TestScoreShooting(t *testing.T) {
	box := []schema.BoxScoreLine{
		{PlayerName: "A", FG3M: 6, FG3A: 15},
		{PlayerName: "B", FG3M: 4, FG3A: 10},
	}

	t.Run("normalized against baseline max", func(t *testing.T) {
		baseline := schema.RecentBaseline{MaxFG3Pct: 0.5, Games: 3}
		score, pct := scoreShooting(box, baseline, 0.05)
		// 10/25 = 0.4, ratio 0.8, weighted 0.8 * 5 = 4.
		assert.InDelta(t, 0.4, pct, 0.001)
		assert.InDelta(t, 4, score, 0.001)
	})

	t.Run("empty baseline falls back to the game itself", func(t *testing.T) {
		score, pct := scoreShooting(box, schema.RecentBaseline{}, 0.05)
		assert.InDelta(t, 0.4, pct, 0.001)
		assert.InDelta(t, 5, score, 0.001)
	})

	t.Run("ratio above baseline clamps to full weight", func(t *testing.T) {
		baseline := schema.RecentBaseline{MaxFG3Pct: 0.2, Games: 3}
		score, _ := scoreShooting(box, baseline, 0.05)
		assert.InDelta(t, 5, score, 0.001)
	})

	t.Run("no attempts scores zero", func(t *testing.T) {
		score, pct := scoreShooting(nil, schema.RecentBaseline{MaxFG3Pct: 0.5, Games: 3}, 0.05)
		assert.InDelta(t, 0, pct, 0.001)
		assert.InDelta(t, 0, score, 0.001)
	})
}

// TestScoreMarginAndStar verifies the closing-minutes margin and star components.
func TestScoreMarginAndStar(t *testing.T) {
	events := []schema.PlayEvent{
		{Period: 4, Clock: "8:00", Margin: 12, MarginKnown: true}, // outside the closing window
		{Period: 4, Clock: "4:30", Margin: 4, MarginKnown: true},
		{Period: 4, Clock: "1:15", Margin: 6, MarginKnown: true},
	}
	box := []schema.BoxScoreLine{
		{PlayerName: "Star", PTS: 41},
		{PlayerName: "Role", PTS: 12},
	}

	t.Run("close finish with a star performance", func(t *testing.T) {
		result, err := scoreMarginAndStar(events, box, 0.25, 0.10)
		require.NoError(t, err)
		assert.InDelta(t, 5, result.AverageMargin, 0.001)
		assert.InDelta(t, 25, result.MarginScore, 0.001)
		assert.Equal(t, 41, result.MaxPoints)
		assert.InDelta(t, 10, result.StarScore, 0.001)
	})

	t.Run("overtime shifts the closing window", func(t *testing.T) {
		otEvents := append(events, schema.PlayEvent{Period: 5, Clock: "2:00", Margin: 20, MarginKnown: true})
		result, err := scoreMarginAndStar(otEvents, box, 0.25, 0.10)
		require.NoError(t, err)
		// Only the overtime event counts now, and 20 is a blowout margin.
		assert.InDelta(t, 20, result.AverageMargin, 0.001)
		assert.InDelta(t, 0, result.MarginScore, 0.001)
	})

	t.Run("empty box score errors", func(t *testing.T) {
		_, err := scoreMarginAndStar(events, nil, 0.25, 0.10)
		assert.Error(t, err)
	})

	t.Run("negative points errors", func(t *testing.T) {
		bad := []schema.BoxScoreLine{{PlayerName: "Bad", PTS: -1}}
		_, err := scoreMarginAndStar(events, bad, 0.25, 0.10)
		assert.Error(t, err)
	})
}

// TestSafeRatio tests division with a zero denominator.
func TestSafeRatio(t *testing.T) {
	assert.InDelta(t, 0.5, safeRatio(1, 2), 0.001)
	assert.InDelta(t, 0, safeRatio(1, 0), 0.001)
	assert.InDelta(t, 0, safeRatio(0, 0), 0.001)
}

// FuzzParseClockSeconds fuzzes the clock parser with arbitrary strings.
func FuzzParseClockSeconds(f *testing.F) {
	seeds := []string{"10:30", "0:24", "", "abc", "1:30:00", "-1:30", "0:05.5"}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, clock string) {
		secs, ok := parseClockSeconds(clock)
		if ok && secs < 0 {
			t.Errorf("parsed clock %q to negative seconds %f", clock, secs)
		}
	})
}
