// Package core implements the game scoring engine and batch orchestration.
package core

import (
	"fmt"

	"github.com/AnderssonElin/nba-dashboard/internal/contract"
	"github.com/AnderssonElin/nba-dashboard/schema"
)

// AnalyzeGame scores a single game from its raw tables. The scorers are
// independent and read only their inputs, so callers may analyze games
// concurrently as long as the baseline is not mutated.
//
// An empty play-by-play table short-circuits to a zeroed result graded N/A
// rather than an error; a failure inside the margin/star computation is
// logged with the game ID and its values are substituted with 0 so one bad
// game never aborts a batch.
func AnalyzeGame(cfg *contract.Config, meta schema.GameMeta, events []schema.PlayEvent, box []schema.BoxScoreLine, baseline schema.RecentBaseline) schema.GameScoreResult {
	result := schema.GameScoreResult{
		GameID:   meta.GameID,
		GameDate: meta.GameDate,
		Matchup:  meta.Matchup,
	}

	if len(events) == 0 {
		result.Grade = schema.GradeNA
		return result
	}

	weights := cfg.Weights

	periodScore, avgPeriodMargin := scorePeriods(events, weights)
	overtimes, extraScore := scoreExtraPeriods(events, weights.ExtraPeriod)
	leadChanges, leadScore := scoreLeadChanges(events, weights.LeadChange)
	beaters, buzzerScore := scoreBuzzerBeaters(events, weights.BuzzerBeater)
	fg3Score, _ := scoreShooting(box, baseline, weights.FG3Pct)

	marginStar, err := scoreMarginAndStar(events, box, weights.Margin, weights.Star)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("Margin/star scoring failed for game %s", meta.GameID), err)
		marginStar = marginStarResult{}
	}

	result.PeriodScore = periodScore
	result.ExtraPeriodScore = extraScore
	result.LeadChangeScore = leadScore
	result.BuzzerBeaterScore = buzzerScore
	result.FG3PctScore = fg3Score
	result.StarScore = marginStar.StarScore
	result.MarginScore = marginStar.MarginScore

	result.TotalScore = periodScore + extraScore + leadScore + buzzerScore +
		fg3Score + marginStar.StarScore + marginStar.MarginScore
	result.Grade = GradeForScore(schema.DefaultGradeScale(), result.TotalScore)
	result.AverageMargin = marginStar.AverageMargin

	result.LeadChanges = leadChanges
	result.OvertimePeriods = overtimes
	result.BuzzerBeaters = beaters
	result.MaxPoints = marginStar.MaxPoints
	result.AveragePeriodMargin = avgPeriodMargin
	result.MaxRecentFGPct = baseline.MaxFGPct
	result.MaxRecentFG3Pct = baseline.MaxFG3Pct

	if cfg.Explain {
		result.Breakdown = map[schema.BreakdownKey]float64{
			schema.BreakdownPeriods:     periodScore,
			schema.BreakdownExtra:       extraScore,
			schema.BreakdownLeadChanges: leadScore,
			schema.BreakdownBuzzer:      buzzerScore,
			schema.BreakdownFG3:         fg3Score,
			schema.BreakdownStar:        marginStar.StarScore,
			schema.BreakdownMargin:      marginStar.MarginScore,
		}
	}

	return result
}
