// Package schema has configs, models and shared constants for all parts of nbadash.
package schema

// PlayEvent is a single play-by-play row for one game.
// Rows are chronological within a game; that order is load-bearing for
// lead-change detection and final-event checks.
type PlayEvent struct {
	Period      int    // 1-4 regulation, 5+ overtime
	Clock       string // Game clock remaining in the period, "MM:SS"
	Margin      int    // Running score margin (home - away) at this event
	MarginKnown bool   // False for non-scoring rows, where the feed leaves the margin blank
	Description string // Event description text, used to detect made shots
}

// BoxScoreLine is one player's stat line for a game.
type BoxScoreLine struct {
	GameID     string
	TeamAbbr   string
	PlayerName string
	FGM        int // Field goals made
	FGA        int // Field goals attempted
	FG3M       int // Three-pointers made
	FG3A       int // Three-pointers attempted
	PTS        int // Points scored
}

// RecentGameLine is one team-game row from the league game finder.
// Each game contributes two rows, one per team.
type RecentGameLine struct {
	GameID   string
	GameDate string // "2006-01-02"
	Matchup  string // e.g. "LAL @ BOS"
	TeamAbbr string
	FGPct    float64
	FG3Pct   float64
	PTS      int
}

// RecentBaseline holds the rolling normalization maxima computed from the
// recent-games window. It is built once per batch and treated as immutable
// while games are analyzed concurrently.
type RecentBaseline struct {
	MaxFGPct  float64
	MaxFG3Pct float64
	Games     int // Distinct games in the window
}

// GameScoreResult is the output record for one analyzed game. It is
// constructed once by the analyzer and immutable afterwards.
type GameScoreResult struct {
	GameID   string `json:"game_id"`
	GameDate string `json:"game_date"`
	Matchup  string `json:"teams"`

	PeriodScore       float64 `json:"period_scores"`
	ExtraPeriodScore  float64 `json:"extra_periods"`
	LeadChangeScore   float64 `json:"lead_changes"`
	BuzzerBeaterScore float64 `json:"buzzer_beater"`
	FG3PctScore       float64 `json:"fg3_pct"`
	StarScore         float64 `json:"star_performance"`
	MarginScore       float64 `json:"margin"`

	TotalScore    float64 `json:"total_score"`
	Grade         Grade   `json:"grade"`
	AverageMargin float64 `json:"average_margin"`

	// Detail metrics surfaced with --detail.
	LeadChanges         int     `json:"lead_change_count"`
	OvertimePeriods     int     `json:"overtime_periods"`
	BuzzerBeaters       int     `json:"buzzer_beater_count"`
	MaxPoints           int     `json:"max_points"`
	AveragePeriodMargin float64 `json:"average_period_margin"`
	MaxRecentFGPct      float64 `json:"max_recent_fg_pct"`
	MaxRecentFG3Pct     float64 `json:"max_recent_fg3_pct"`

	// Breakdown holds the per-component contribution for --explain.
	Breakdown map[BreakdownKey]float64 `json:"breakdown,omitempty"`
}

// GameMeta identifies a game to analyze.
type GameMeta struct {
	GameID   string
	GameDate string
	Matchup  string
}

// BatchAnalysisOutput bundles the results of a batch run.
type BatchAnalysisOutput struct {
	Results  []GameScoreResult
	Baseline RecentBaseline
}
