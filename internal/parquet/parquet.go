// Package parquet provides data structures and functions for exporting nbadash
// run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/AnderssonElin/nba-dashboard/schema"
	"github.com/parquet-go/parquet-go"
)

// Run represents a single scoring run with metadata.
// This struct maps to the nbadash_runs database table.
type Run struct {
	// RunID is the unique identifier for this scoring run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalGamesScored is the number of games scored in this run
	TotalGamesScored int32 `parquet:"total_games_scored,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// GameScore represents the scores for a single game in a run.
// This struct maps to the nbadash_game_scores database table.
type GameScore struct {
	// RunID references the parent scoring run
	RunID int64 `parquet:"run_id,snappy"`

	// GameID is the league's game identifier
	GameID string `parquet:"game_id,snappy"`

	// GameDate is the date the game was played
	GameDate string `parquet:"game_date,snappy"`

	// Matchup names the two teams, e.g. "LAL @ BOS"
	Matchup string `parquet:"matchup,snappy"`

	// ScoreTime is when this game was scored (stored as TIMESTAMP with nanosecond precision)
	ScoreTime time.Time `parquet:"score_time,snappy"`

	// TotalScore is the combined excitement score
	TotalScore float64 `parquet:"total_score,snappy"`

	// Grade is the letter grade derived from TotalScore
	Grade string `parquet:"grade,snappy"`

	// ScorePeriods is the weighted period-closeness component
	ScorePeriods float64 `parquet:"score_periods,snappy"`

	// ScoreExtra is the overtime component
	ScoreExtra float64 `parquet:"score_extra,snappy"`

	// ScoreLeadChanges is the lead-change component
	ScoreLeadChanges float64 `parquet:"score_lead_changes,snappy"`

	// ScoreBuzzer is the buzzer-beater component
	ScoreBuzzer float64 `parquet:"score_buzzer,snappy"`

	// ScoreFG3 is the three-point shooting component
	ScoreFG3 float64 `parquet:"score_fg3,snappy"`

	// ScoreStar is the star-performance component
	ScoreStar float64 `parquet:"score_star,snappy"`

	// ScoreMargin is the closing-margin component
	ScoreMargin float64 `parquet:"score_margin,snappy"`

	// AverageMargin is the average closing-window score margin
	AverageMargin float64 `parquet:"average_margin,snappy"`
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the Run struct tags
	writer := parquet.NewGenericWriter[Run](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteGameScoresParquet writes a slice of GameScore structs to a Parquet file.
func WriteGameScoresParquet(data []GameScore, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the GameScore struct tags
	writer := parquet.NewGenericWriter[GameScore](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchRuns generates sample Run data for demonstration.
func MockFetchRuns() []Run {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := now.Add(-1*time.Hour - 55*time.Minute)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"recent":20,"limit":10,"workers":4}`

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := now.Add(-23*time.Hour - 58*time.Minute)
	durationMs2 := int32(endTime2.Sub(startTime2).Milliseconds())
	configParams2 := `{"recent":50,"limit":25,"workers":8}`

	startTime3 := now.Add(-10 * time.Minute)
	// Note: endTime3, durationMs3, configParams3 are nil to demonstrate nullable fields

	return []Run{
		{
			RunID:            1,
			StartTime:        startTime1,
			EndTime:          &endTime1,
			RunDurationMs:    &durationMs1,
			TotalGamesScored: 20,
			ConfigParams:     &configParams1,
		},
		{
			RunID:            2,
			StartTime:        startTime2,
			EndTime:          &endTime2,
			RunDurationMs:    &durationMs2,
			TotalGamesScored: 50,
			ConfigParams:     &configParams2,
		},
		{
			RunID:            3,
			StartTime:        startTime3,
			EndTime:          nil, // Still running - nullable field
			RunDurationMs:    nil, // Not yet calculated - nullable field
			TotalGamesScored: 0,
			ConfigParams:     nil, // No config stored - nullable field
		},
	}
}

// MockFetchGameScores generates sample GameScore data for demonstration.
func MockFetchGameScores() []GameScore {
	now := time.Now()

	return []GameScore{
		{
			RunID:            1,
			GameID:           "0022500001",
			GameDate:         "2025-01-15",
			Matchup:          "BOS vs. LAL",
			ScoreTime:        now.Add(-2 * time.Hour),
			TotalScore:       89.5,
			Grade:            "A",
			ScorePeriods:     48.0,
			ScoreExtra:       5.0,
			ScoreLeadChanges: 4.2,
			ScoreBuzzer:      0.0,
			ScoreFG3:         3.8,
			ScoreStar:        10.0,
			ScoreMargin:      18.5,
			AverageMargin:    3.2,
		},
		{
			RunID:            1,
			GameID:           "0022500002",
			GameDate:         "2025-01-15",
			Matchup:          "GSW @ DEN",
			ScoreTime:        now.Add(-2 * time.Hour),
			TotalScore:       64.1,
			Grade:            "C",
			ScorePeriods:     35.0,
			ScoreExtra:       0.0,
			ScoreLeadChanges: 2.1,
			ScoreBuzzer:      0.0,
			ScoreFG3:         4.5,
			ScoreStar:        10.0,
			ScoreMargin:      12.5,
			AverageMargin:    7.8,
		},
		{
			RunID:            2,
			GameID:           "0022500018",
			GameDate:         "2025-01-14",
			Matchup:          "MIA @ NYK",
			ScoreTime:        now.Add(-24 * time.Hour),
			TotalScore:       42.7,
			Grade:            "D",
			ScorePeriods:     28.0,
			ScoreExtra:       0.0,
			ScoreLeadChanges: 1.3,
			ScoreBuzzer:      0.0,
			ScoreFG3:         2.9,
			ScoreStar:        0.0,
			ScoreMargin:      10.5,
			AverageMargin:    11.4,
		},
	}
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			RunID:            record.RunID,
			StartTime:        record.StartTime,
			EndTime:          record.EndTime,
			RunDurationMs:    record.RunDurationMs,
			TotalGamesScored: record.TotalGamesScored,
			ConfigParams:     record.ConfigParams,
		}
	}
	return result
}

// ConvertGameScoreRecords converts schema.GameScoreRecord to GameScore for Parquet export.
func ConvertGameScoreRecords(records []schema.GameScoreRecord) []GameScore {
	result := make([]GameScore, len(records))
	for i, record := range records {
		result[i] = GameScore{
			RunID:            record.RunID,
			GameID:           record.GameID,
			GameDate:         record.GameDate,
			Matchup:          record.Matchup,
			ScoreTime:        record.ScoreTime,
			TotalScore:       record.TotalScore,
			Grade:            record.Grade,
			ScorePeriods:     record.PeriodScore,
			ScoreExtra:       record.ExtraPeriodScore,
			ScoreLeadChanges: record.LeadChangeScore,
			ScoreBuzzer:      record.BuzzerBeaterScore,
			ScoreFG3:         record.FG3PctScore,
			ScoreStar:        record.StarScore,
			ScoreMargin:      record.MarginScore,
			AverageMargin:    record.AverageMargin,
		}
	}
	return result
}
