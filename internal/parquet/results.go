package parquet

import (
	"fmt"
	"os"

	"github.com/AnderssonElin/nba-dashboard/schema"
	"github.com/parquet-go/parquet-go"
)

// RankedGame represents one ranked game result for direct Parquet output.
type RankedGame struct {
	Rank             int32   `parquet:"rank,snappy"`
	GameID           string  `parquet:"game_id,snappy"`
	GameDate         string  `parquet:"game_date,snappy"`
	Matchup          string  `parquet:"matchup,snappy"`
	TotalScore       float64 `parquet:"total_score,snappy"`
	Grade            string  `parquet:"grade,snappy"`
	ScorePeriods     float64 `parquet:"score_periods,snappy"`
	ScoreExtra       float64 `parquet:"score_extra,snappy"`
	ScoreLeadChanges float64 `parquet:"score_lead_changes,snappy"`
	ScoreBuzzer      float64 `parquet:"score_buzzer,snappy"`
	ScoreFG3         float64 `parquet:"score_fg3,snappy"`
	ScoreStar        float64 `parquet:"score_star,snappy"`
	ScoreMargin      float64 `parquet:"score_margin,snappy"`
	AverageMargin    float64 `parquet:"average_margin,snappy"`
}

// ConvertEnrichedResults converts ranked game results for Parquet output.
func ConvertEnrichedResults(results []schema.EnrichedGameResult) []RankedGame {
	output := make([]RankedGame, len(results))
	for i, r := range results {
		output[i] = RankedGame{
			Rank:             int32(r.Rank),
			GameID:           r.GameID,
			GameDate:         r.GameDate,
			Matchup:          r.Matchup,
			TotalScore:       r.TotalScore,
			Grade:            string(r.Grade),
			ScorePeriods:     r.PeriodScore,
			ScoreExtra:       r.ExtraPeriodScore,
			ScoreLeadChanges: r.LeadChangeScore,
			ScoreBuzzer:      r.BuzzerBeaterScore,
			ScoreFG3:         r.FG3PctScore,
			ScoreStar:        r.StarScore,
			ScoreMargin:      r.MarginScore,
			AverageMargin:    r.AverageMargin,
		}
	}
	return output
}

// WriteRankedGamesParquet writes ranked game results to a Parquet file.
func WriteRankedGamesParquet(data []RankedGame, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the RankedGame struct tags
	writer := parquet.NewGenericWriter[RankedGame](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
