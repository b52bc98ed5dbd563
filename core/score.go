package core

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/AnderssonElin/nba-dashboard/schema"
)

// Tunable constants for the scoring curves.
const (
	regulationPeriods = 4

	periodCloseMargin   = 7.0  // average period margin at or below this is a fully close period
	periodBlowoutMargin = 20.0 // average period margin above this contributes nothing

	marginCloseAvg   = 5.0  // closing-minutes margin at or below this is a nail-biter
	marginBlowoutAvg = 15.0 // closing-minutes margin at or above this contributes nothing

	leadChangeNorm = 12.0 // lead changes at or above this saturate

	buzzerWindowSeconds  = 24  // window before a period ends for buzzer-beater checks
	closingWindowSeconds = 300 // final stretch of the last period for margin checks

	starPointsThreshold = 35 // individual points at or above this is a star performance
	starNorm            = 1.0
)

// safeRatio returns a/b, or 0 when b is 0. Every normalization in the
// scorers goes through this so the zero-handling policy stays consistent.
func safeRatio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func signOf(margin int) int {
	switch {
	case margin > 0:
		return 1
	case margin < 0:
		return -1
	default:
		return 0
	}
}

// parseClockSeconds converts a "MM:SS" game clock string into seconds
// remaining in the period. Returns false for blank or malformed clocks.
func parseClockSeconds(clock string) (float64, bool) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil || minutes < 0 {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || seconds < 0 {
		return 0, false
	}
	return float64(minutes)*60 + seconds, true
}

// periodCloseness maps the average absolute margin of a period onto [0,1].
// A tied period is fully close; anything beyond a blowout margin is 0, with
// a linear ramp in between.
func periodCloseness(avgMargin float64) float64 {
	switch {
	case avgMargin <= periodCloseMargin:
		return 1
	case avgMargin > periodBlowoutMargin:
		return 0
	default:
		return (periodBlowoutMargin - avgMargin) / (periodBlowoutMargin - periodCloseMargin)
	}
}

// marginCloseness maps the closing-minutes average absolute margin onto [0,1].
func marginCloseness(avgMargin float64) float64 {
	switch {
	case avgMargin <= marginCloseAvg:
		return 1
	case avgMargin >= marginBlowoutAvg:
		return 0
	default:
		return (marginBlowoutAvg - avgMargin) / (marginBlowoutAvg - marginCloseAvg)
	}
}

// scorePeriods computes the period-closeness component across regulation
// periods. Each period that actually occurred contributes its own weight
// scaled by how close it was; the summed contribution is capped by
// MaxPeriodTotal. Also returns the average per-period margin across the
// periods seen, for the detail view.
func scorePeriods(events []schema.PlayEvent, weights schema.WeightConfig) (score float64, avgPeriodMargin float64) {
	var weighted float64
	var marginSum float64
	periodsSeen := 0

	for period := 1; period <= regulationPeriods; period++ {
		var absSum float64
		count := 0
		for _, ev := range events {
			if ev.Period != period || !ev.MarginKnown {
				continue
			}
			absSum += math.Abs(float64(ev.Margin))
			count++
		}
		if count == 0 {
			continue
		}
		avg := absSum / float64(count)
		periodsSeen++
		marginSum += avg
		weighted += weights.PeriodWeights[period] * 100 * periodCloseness(avg)
	}

	limit := weights.MaxPeriodTotal * 100
	if weighted > limit {
		weighted = limit
	}
	return weighted, safeRatio(marginSum, float64(periodsSeen))
}

// scoreExtraPeriods counts distinct overtime periods. Any overtime yields
// the full weight; multiple overtimes do not multiply the score further.
func scoreExtraPeriods(events []schema.PlayEvent, weight float64) (overtimes int, score float64) {
	seen := make(map[int]struct{})
	for _, ev := range events {
		if ev.Period > regulationPeriods {
			seen[ev.Period] = struct{}{}
		}
	}
	overtimes = len(seen)
	return overtimes, math.Min(1, float64(overtimes)) * weight * 100
}

// scoreLeadChanges counts sign flips in the running margin. Tie events are
// pending: a lead change registers only when the sign after a tie differs
// from the sign before it.
func scoreLeadChanges(events []schema.PlayEvent, weight float64) (leadChanges int, score float64) {
	prevSign := 0
	for _, ev := range events {
		if !ev.MarginKnown {
			continue
		}
		sign := signOf(ev.Margin)
		if sign == 0 {
			continue
		}
		if prevSign != 0 && sign != prevSign {
			leadChanges++
		}
		prevSign = sign
	}
	return leadChanges, clamp01(float64(leadChanges)/leadChangeNorm) * weight * 100
}

// isMadeShot reports whether the event text records a made basket or free
// throw. The feed appends the shooter's running total to made attempts,
// e.g. "Tatum 26' 3PT Jump Shot (32 PTS)", and prefixes misses with
// "MISS". A blank description carries no evidence either way, so the
// margin change on the row decides.
func isMadeShot(description string) bool {
	d := strings.ToUpper(description)
	if d == "" {
		return true
	}
	return !strings.Contains(d, "MISS") && strings.Contains(d, "PTS")
}

// scoreBuzzerBeaters scans the fourth period and overtimes for made shots
// inside the final seconds that changed which team led, or tied the game.
// One or more qualifying shots yields the full weight.
func scoreBuzzerBeaters(events []schema.PlayEvent, weight float64) (beaters int, score float64) {
	prevSign := 0
	prevMargin := 0
	prevKnown := false

	for _, ev := range events {
		if !ev.MarginKnown {
			continue
		}
		if ev.Period >= regulationPeriods && prevKnown && ev.Margin != prevMargin && isMadeShot(ev.Description) {
			if secs, ok := parseClockSeconds(ev.Clock); ok && secs <= buzzerWindowSeconds {
				sign := signOf(ev.Margin)
				if sign == 0 || (prevSign != 0 && sign != prevSign) {
					beaters++
				}
			}
		}
		prevMargin = ev.Margin
		prevKnown = true
		if s := signOf(ev.Margin); s != 0 {
			prevSign = s
		}
	}
	return beaters, math.Min(1, float64(beaters)) * weight * 100
}

// scoreShooting computes the game's aggregate three-point percentage and
// normalizes it against the best three-point percentage in the recent-games
// baseline. An empty baseline falls back to the game's own percentage, so
// the ratio is 1.
func scoreShooting(box []schema.BoxScoreLine, baseline schema.RecentBaseline, weight float64) (score float64, gameFG3Pct float64) {
	var made, attempted int
	for _, line := range box {
		made += line.FG3M
		attempted += line.FG3A
	}
	gameFG3Pct = safeRatio(float64(made), float64(attempted))

	maxRecent := baseline.MaxFG3Pct
	if baseline.Games == 0 {
		maxRecent = gameFG3Pct
	}
	return clamp01(safeRatio(gameFG3Pct, maxRecent)) * weight * 100, gameFG3Pct
}

// marginStarResult bundles the values produced by scoreMarginAndStar so the
// orchestrator can zero-substitute all of them when the computation fails.
type marginStarResult struct {
	AverageMargin float64
	MarginScore   float64
	MaxPoints     int
	StarScore     float64
}

// scoreMarginAndStar computes the closing-minutes margin component and the
// star-performance component. Returns an error instead of a result when the
// box score has no usable rows; the caller decides how to substitute.
func scoreMarginAndStar(events []schema.PlayEvent, box []schema.BoxScoreLine, marginWeight, starWeight float64) (marginStarResult, error) {
	if len(box) == 0 {
		return marginStarResult{}, errors.New("box score has no player rows")
	}

	maxPeriod := 0
	for _, ev := range events {
		if ev.Period > maxPeriod {
			maxPeriod = ev.Period
		}
	}

	// Average absolute margin over the final stretch of the last period.
	var absSum float64
	count := 0
	for _, ev := range events {
		if ev.Period != maxPeriod || !ev.MarginKnown {
			continue
		}
		secs, ok := parseClockSeconds(ev.Clock)
		if !ok || secs > closingWindowSeconds {
			continue
		}
		absSum += math.Abs(float64(ev.Margin))
		count++
	}
	avgMargin := safeRatio(absSum, float64(count))

	maxPoints := 0
	starCount := 0
	for _, line := range box {
		if line.PTS < 0 {
			return marginStarResult{}, errors.New("box score has negative point totals")
		}
		if line.PTS > maxPoints {
			maxPoints = line.PTS
		}
		if line.PTS >= starPointsThreshold {
			starCount++
		}
	}

	return marginStarResult{
		AverageMargin: avgMargin,
		MarginScore:   marginCloseness(avgMargin) * marginWeight * 100,
		MaxPoints:     maxPoints,
		StarScore:     clamp01(float64(starCount)/starNorm) * starWeight * 100,
	}, nil
}
