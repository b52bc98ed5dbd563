package iocache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AnderssonElin/nba-dashboard/internal/contract"
	"github.com/AnderssonElin/nba-dashboard/schema"
)

// Table names for run history.
const (
	runsTable       = "nbadash_runs"
	gameScoresTable = "nbadash_game_scores"
)

// HistoryStoreImpl implements the HistoryStore interface.
type HistoryStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetHistoryDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled tracking
		return &HistoryStoreImpl{
			db:         nil,
			backend:    backend,
			driverName: "",
		}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w. Check that the server is running and the connection string is valid", backend, err)
	}

	// Create the table schemas
	if err := createHistoryTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history tables: %w", err)
	}

	return &HistoryStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// createHistoryTables creates the run history tables.
func createHistoryTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{runsTable, getCreateRunsQuery(backend)},
		{gameScoresTable, getCreateGameScoresQuery(backend)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}

	return nil
}

// getCreateRunsQuery returns the CREATE TABLE query for nbadash_runs.
func getCreateRunsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(runsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				start_time DATETIME(6) NOT NULL,
				end_time DATETIME(6),
				run_duration_ms INT,
				total_games_scored INT,
				config_params TEXT
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				start_time TIMESTAMPTZ NOT NULL,
				end_time TIMESTAMPTZ,
				run_duration_ms INT,
				total_games_scored INT,
				config_params TEXT
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				start_time TEXT NOT NULL,
				end_time TEXT,
				run_duration_ms INTEGER,
				total_games_scored INTEGER,
				config_params TEXT
			);
		`, quotedTableName)
	}
}

// getCreateGameScoresQuery returns the CREATE TABLE query for nbadash_game_scores.
func getCreateGameScoresQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(gameScoresTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				game_id VARCHAR(32) NOT NULL,
				game_date VARCHAR(32) NOT NULL,
				matchup VARCHAR(64) NOT NULL,
				score_time DATETIME(6) NOT NULL,
				total_score DOUBLE NOT NULL,
				grade VARCHAR(8) NOT NULL,
				score_periods DOUBLE NOT NULL,
				score_extra DOUBLE NOT NULL,
				score_lead_changes DOUBLE NOT NULL,
				score_buzzer DOUBLE NOT NULL,
				score_fg3 DOUBLE NOT NULL,
				score_star DOUBLE NOT NULL,
				score_margin DOUBLE NOT NULL,
				average_margin DOUBLE NOT NULL,
				PRIMARY KEY (run_id, game_id)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				game_id TEXT NOT NULL,
				game_date TEXT NOT NULL,
				matchup TEXT NOT NULL,
				score_time TIMESTAMPTZ NOT NULL,
				total_score DOUBLE PRECISION NOT NULL,
				grade TEXT NOT NULL,
				score_periods DOUBLE PRECISION NOT NULL,
				score_extra DOUBLE PRECISION NOT NULL,
				score_lead_changes DOUBLE PRECISION NOT NULL,
				score_buzzer DOUBLE PRECISION NOT NULL,
				score_fg3 DOUBLE PRECISION NOT NULL,
				score_star DOUBLE PRECISION NOT NULL,
				score_margin DOUBLE PRECISION NOT NULL,
				average_margin DOUBLE PRECISION NOT NULL,
				PRIMARY KEY (run_id, game_id)
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER NOT NULL,
				game_id TEXT NOT NULL,
				game_date TEXT NOT NULL,
				matchup TEXT NOT NULL,
				score_time TEXT NOT NULL,
				total_score REAL NOT NULL,
				grade TEXT NOT NULL,
				score_periods REAL NOT NULL,
				score_extra REAL NOT NULL,
				score_lead_changes REAL NOT NULL,
				score_buzzer REAL NOT NULL,
				score_fg3 REAL NOT NULL,
				score_star REAL NOT NULL,
				score_margin REAL NOT NULL,
				average_margin REAL NOT NULL,
				PRIMARY KEY (run_id, game_id)
			);
		`, quotedTableName)
	}
}

// BeginRun creates a new scoring run and returns its unique ID.
func (hs *HistoryStoreImpl) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return 0, nil
	}

	// Serialize config params to JSON
	configJSON, err := json.Marshal(configParams)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config params: %w", err)
	}

	quotedTableName := quoteTableName(runsTable, hs.backend)

	var runID int64
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (start_time, config_params) VALUES ($1, $2) RETURNING run_id`, quotedTableName)
		err = hs.db.QueryRow(query, startTime, string(configJSON)).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (start_time, config_params) VALUES (?, ?)`, quotedTableName)
		var result sql.Result
		result, err = hs.db.Exec(query, formatTime(startTime, hs.backend), string(configJSON))
		if err != nil {
			return 0, err
		}
		runID, err = result.LastInsertId()
	}

	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	return runID, nil
}

// EndRun updates the scoring run with completion data.
func (hs *HistoryStoreImpl) EndRun(runID int64, endTime time.Time, totalGames int) error {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}

	// First, get the start_time to calculate duration
	quotedTableName := quoteTableName(runsTable, hs.backend)
	var startTime time.Time

	var query string
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = $1`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = ?`, quotedTableName)
	}

	row := hs.db.QueryRow(query, runID)

	// Handle different time storage formats per backend
	switch hs.backend {
	case schema.SQLiteBackend:
		var startTimeStr string
		if err := row.Scan(&startTimeStr); err != nil {
			return fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
		}
		var err error
		startTime, err = time.Parse(time.RFC3339Nano, startTimeStr)
		if err != nil {
			return fmt.Errorf("failed to parse start_time: %w", err)
		}
	default: // MySQL and PostgreSQL store as native datetime
		if err := row.Scan(&startTime); err != nil {
			return fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
		}
	}

	// Calculate duration in milliseconds
	durationMs := endTime.Sub(startTime).Milliseconds()

	// Update the run with completion data
	var updateQuery string
	var args []any

	switch hs.backend {
	case schema.PostgreSQLBackend:
		updateQuery = fmt.Sprintf(`UPDATE %s SET end_time = $1, run_duration_ms = $2, total_games_scored = $3 WHERE run_id = $4`, quotedTableName)
		args = []any{endTime, durationMs, totalGames, runID}
	default: // SQLite and MySQL
		updateQuery = fmt.Sprintf(`UPDATE %s SET end_time = ?, run_duration_ms = ?, total_games_scored = ? WHERE run_id = ?`, quotedTableName)
		args = []any{formatTime(endTime, hs.backend), durationMs, totalGames, runID}
	}

	_, err := hs.db.Exec(updateQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	return nil
}

// RecordGameScore stores the final scores for one game.
func (hs *HistoryStoreImpl) RecordGameScore(runID int64, result schema.GameScoreResult) error {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(gameScoresTable, hs.backend)
	scoreTime := formatTime(time.Now(), hs.backend)

	var query string
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`
			INSERT INTO %s (run_id, game_id, game_date, matchup, score_time, total_score, grade,
			                score_periods, score_extra, score_lead_changes, score_buzzer,
			                score_fg3, score_star, score_margin, average_margin)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`
			INSERT INTO %s (run_id, game_id, game_date, matchup, score_time, total_score, grade,
			                score_periods, score_extra, score_lead_changes, score_buzzer,
			                score_fg3, score_star, score_margin, average_margin)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, quotedTableName)
	}

	args := []any{
		runID, result.GameID, result.GameDate, result.Matchup, scoreTime,
		result.TotalScore, string(result.Grade),
		result.PeriodScore, result.ExtraPeriodScore, result.LeadChangeScore, result.BuzzerBeaterScore,
		result.FG3PctScore, result.StarScore, result.MarginScore, result.AverageMargin,
	}

	if _, err := hs.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to insert game score: %w", err)
	}

	return nil
}

// Close closes the underlying connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:    string(hs.backend),
		Connected:  hs.db != nil,
		TableSizes: make(map[string]int64),
	}

	if hs.backend == schema.NoneBackend || hs.db == nil {
		return status, nil
	}

	// Get total runs
	runsQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(runsTable, hs.backend))
	row := hs.db.QueryRow(runsQuery)
	if err := row.Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns > 0 {
		// Get last run info
		lastRunQuery := fmt.Sprintf("SELECT run_id, start_time FROM %s ORDER BY run_id DESC LIMIT 1", quoteTableName(runsTable, hs.backend))
		row = hs.db.QueryRow(lastRunQuery)

		switch hs.backend {
		case schema.SQLiteBackend:
			var lastRunID int64
			var lastRunTimeStr string
			if err := row.Scan(&lastRunID, &lastRunTimeStr); err != nil {
				return status, fmt.Errorf("failed to get last run info: %w", err)
			}
			status.LastRunID = lastRunID
			lastRunTime, err := time.Parse(time.RFC3339Nano, lastRunTimeStr)
			if err != nil {
				return status, fmt.Errorf("failed to parse last run time: %w", err)
			}
			status.LastRunTime = lastRunTime
		default: // MySQL and PostgreSQL store as native datetime
			if err := row.Scan(&status.LastRunID, &status.LastRunTime); err != nil {
				return status, fmt.Errorf("failed to get last run info: %w", err)
			}
		}

		// Get oldest run time
		oldestRunQuery := fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id ASC LIMIT 1", quoteTableName(runsTable, hs.backend))
		row = hs.db.QueryRow(oldestRunQuery)

		switch hs.backend {
		case schema.SQLiteBackend:
			var oldestRunTimeStr string
			if err := row.Scan(&oldestRunTimeStr); err != nil {
				return status, fmt.Errorf("failed to get oldest run time: %w", err)
			}
			oldestRunTime, err := time.Parse(time.RFC3339Nano, oldestRunTimeStr)
			if err != nil {
				return status, fmt.Errorf("failed to parse oldest run time: %w", err)
			}
			status.OldestRunTime = oldestRunTime
		default: // MySQL and PostgreSQL store as native datetime
			if err := row.Scan(&status.OldestRunTime); err != nil {
				return status, fmt.Errorf("failed to get oldest run time: %w", err)
			}
		}

		// Get total games scored
		gamesQuery := fmt.Sprintf("SELECT COALESCE(SUM(total_games_scored), 0) FROM %s", quoteTableName(runsTable, hs.backend))
		row = hs.db.QueryRow(gamesQuery)
		if err := row.Scan(&status.TotalGamesScored); err != nil {
			return status, fmt.Errorf("failed to get total games scored: %w", err)
		}
	}

	// Get table sizes
	for _, table := range []string{runsTable, gameScoresTable} {
		countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(table, hs.backend))
		row = hs.db.QueryRow(countQuery)
		var count int64
		if err := row.Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}

	return status, nil
}

// GetAllRuns retrieves all scoring runs from the store.
func (hs *HistoryStoreImpl) GetAllRuns() ([]schema.RunRecord, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(runsTable, hs.backend)
	query := fmt.Sprintf("SELECT run_id, start_time, end_time, run_duration_ms, total_games_scored, config_params FROM %s ORDER BY run_id", quotedTableName)

	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RunRecord

	for rows.Next() {
		var record schema.RunRecord
		var totalGames sql.NullInt32

		switch hs.backend {
		case schema.SQLiteBackend:
			var startTimeStr string
			var endTimeStr *string
			if err := rows.Scan(&record.RunID, &startTimeStr, &endTimeStr, &record.RunDurationMs, &totalGames, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan run: %w", err)
			}
			startTime, err := time.Parse(time.RFC3339Nano, startTimeStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse start_time: %w", err)
			}
			record.StartTime = startTime
			if endTimeStr != nil {
				endTime, err := time.Parse(time.RFC3339Nano, *endTimeStr)
				if err != nil {
					return nil, fmt.Errorf("failed to parse end_time: %w", err)
				}
				record.EndTime = &endTime
			}
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.StartTime, &record.EndTime, &record.RunDurationMs, &totalGames, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan run: %w", err)
			}
		}

		record.TotalGamesScored = totalGames.Int32
		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return results, nil
}

// GetAllGameScores retrieves all recorded game scores from the store.
func (hs *HistoryStoreImpl) GetAllGameScores() ([]schema.GameScoreRecord, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(gameScoresTable, hs.backend)
	query := fmt.Sprintf(`SELECT run_id, game_id, game_date, matchup, score_time, total_score, grade,
    score_periods, score_extra, score_lead_changes, score_buzzer,
    score_fg3, score_star, score_margin, average_margin
    FROM %s ORDER BY run_id, game_id`, quotedTableName)

	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query game scores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.GameScoreRecord

	for rows.Next() {
		var record schema.GameScoreRecord

		switch hs.backend {
		case schema.SQLiteBackend:
			var scoreTimeStr string
			if err := rows.Scan(&record.RunID, &record.GameID, &record.GameDate, &record.Matchup, &scoreTimeStr,
				&record.TotalScore, &record.Grade, &record.PeriodScore, &record.ExtraPeriodScore,
				&record.LeadChangeScore, &record.BuzzerBeaterScore, &record.FG3PctScore,
				&record.StarScore, &record.MarginScore, &record.AverageMargin); err != nil {
				return nil, fmt.Errorf("failed to scan game score: %w", err)
			}
			scoreTime, err := time.Parse(time.RFC3339Nano, scoreTimeStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse score_time: %w", err)
			}
			record.ScoreTime = scoreTime
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.GameID, &record.GameDate, &record.Matchup, &record.ScoreTime,
				&record.TotalScore, &record.Grade, &record.PeriodScore, &record.ExtraPeriodScore,
				&record.LeadChangeScore, &record.BuzzerBeaterScore, &record.FG3PctScore,
				&record.StarScore, &record.MarginScore, &record.AverageMargin); err != nil {
				return nil, fmt.Errorf("failed to scan game score: %w", err)
			}
		}

		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game scores: %w", err)
	}

	return results, nil
}

// formatTime converts a time.Time to the appropriate format for the backend.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.Format(time.RFC3339Nano)
	default:
		return t
	}
}
