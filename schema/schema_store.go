package schema

import "time"

// RunRecord represents a row from the nbadash_runs table.
type RunRecord struct {
	RunID            int64
	StartTime        time.Time
	EndTime          *time.Time
	RunDurationMs    *int32
	TotalGamesScored int32
	ConfigParams     *string
}

// GameScoreRecord represents a row from the nbadash_game_scores table.
type GameScoreRecord struct {
	RunID      int64
	GameID     string
	GameDate   string
	Matchup    string
	ScoreTime  time.Time
	TotalScore float64
	Grade      string

	PeriodScore       float64
	ExtraPeriodScore  float64
	LeadChangeScore   float64
	BuzzerBeaterScore float64
	FG3PctScore       float64
	StarScore         float64
	MarginScore       float64
	AverageMargin     float64
}
