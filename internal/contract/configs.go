package contract

import (
	"fmt"
	"maps"
	"runtime"
	"strings"
	"time"

	"github.com/AnderssonElin/nba-dashboard/schema"
)

// Default values for configuration.
const (
	DefaultRecentWindow = 20
	MaxRecentWindow     = 100
	DefaultResultLimit  = 25
	MaxResultLimit      = 1000
	DefaultPrecision    = 2
	MaxPrecision        = 4
)

// CacheGranularity defines the time granularity for caching API responses.
// This ensures consistent cache key generation across the application and tests.
const CacheGranularity = time.Hour

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// WeightsRawInput holds custom scoring weights from the YAML config file.
// Use float64 pointers so absent keys fall back to defaults.
type WeightsRawInput struct {
	PeriodQ1       *float64 `mapstructure:"period_q1"`
	PeriodQ2       *float64 `mapstructure:"period_q2"`
	PeriodQ3       *float64 `mapstructure:"period_q3"`
	PeriodQ4       *float64 `mapstructure:"period_q4"`
	MaxPeriodTotal *float64 `mapstructure:"max_period_total"`
	ExtraPeriod    *float64 `mapstructure:"extra_period"`
	LeadChange     *float64 `mapstructure:"lead_change"`
	BuzzerBeater   *float64 `mapstructure:"buzzer_beater"`
	FG3Pct         *float64 `mapstructure:"fg3_pct"`
	Star           *float64 `mapstructure:"star_performance"`
	Margin         *float64 `mapstructure:"margin"`
}

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	GameIDs      []string // Explicit game IDs to score; empty means "recent games"
	RecentWindow int      // Number of recent finished games to fetch and baseline
	ResultLimit  int
	Workers      int
	Detail       bool
	Explain      bool
	Precision    int
	Output       schema.OutputMode
	OutputFile   string
	Width        int // Terminal width override (0 = auto-detect)

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	// Weights is the final weight configuration, computed from defaults
	// plus config file overrides. Never mutated after validation.
	Weights schema.WeightConfig

	UseColors bool // Enable colored grades in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	GameIDs []string

	// --- Fields from rootCmd.PersistentFlags() ---
	Recent           int    `mapstructure:"recent"`
	Limit            int    `mapstructure:"limit"`
	Workers          int    `mapstructure:"workers"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Detail           bool   `mapstructure:"detail"`
	Width            int    `mapstructure:"width"`
	CacheBackend     string `mapstructure:"cache-backend"`
	CacheDBConnect   string `mapstructure:"cache-db-connect"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Color            string `mapstructure:"color"`

	// --- Fields from gamesCmd.Flags() ---
	Explain bool `mapstructure:"explain"`

	// --- Custom weights from config file ---
	Weights WeightsRawInput `mapstructure:"weights"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.GameIDs != nil {
		clone.GameIDs = make([]string, len(c.GameIDs))
		copy(clone.GameIDs, c.GameIDs)
	}
	if c.Weights.PeriodWeights != nil {
		clone.Weights.PeriodWeights = make(map[int]float64)
		maps.Copy(clone.Weights.PeriodWeights, c.Weights.PeriodWeights)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processWeights(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and history backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- History Backend Validation ---
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend != "" {
		if _, ok := schema.ValidCacheBackends[cfg.HistoryBackend]; !ok {
			return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
		}
		cfg.HistoryDBConnect = input.HistoryDBConnect
		if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
			return err
		}

		// Validate that cache and history use different databases
		if cfg.CacheBackend == cfg.HistoryBackend && cfg.CacheBackend != schema.NoneBackend {
			if cfg.CacheBackend == schema.SQLiteBackend {
				cacheDBPath := cfg.CacheDBConnect
				if cacheDBPath == "" {
					cacheDBPath = GetCacheDBFilePath()
				}
				historyDBPath := cfg.HistoryDBConnect
				if historyDBPath == "" {
					historyDBPath = GetHistoryDBFilePath()
				}
				if cacheDBPath == historyDBPath {
					return fmt.Errorf("cache and history storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
				}
			}
		}
	}

	return nil
}

// validateSimpleInputs processes and validates all non-weight fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Width = input.Width

	// Game IDs come from positional args; normalize and reject blanks.
	cfg.GameIDs = nil
	for _, id := range input.GameIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return fmt.Errorf("game ID cannot be blank")
		}
		cfg.GameIDs = append(cfg.GameIDs, id)
	}

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. RecentWindow Validation ---
	if input.Recent <= 0 || input.Recent > MaxRecentWindow {
		return fmt.Errorf("recent must be greater than 0 and cannot exceed %d (received %d)", MaxRecentWindow, input.Recent)
	}
	cfg.RecentWindow = input.Recent

	// --- 2. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 3. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 4. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- 5. Backend Validation ---
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}

	return nil
}

// processWeights converts the raw weight input into the final immutable
// cfg.Weights, starting from defaults and applying per-key overrides.
// The period cap plus the component weights must not exceed 1.0 so that
// total scores stay on the 0-100 scale.
func processWeights(cfg *Config, input *ConfigRawInput) error {
	weights := schema.DefaultWeightConfig()

	periodOverrides := map[int]*float64{
		1: input.Weights.PeriodQ1,
		2: input.Weights.PeriodQ2,
		3: input.Weights.PeriodQ3,
		4: input.Weights.PeriodQ4,
	}
	for period, override := range periodOverrides {
		if override != nil {
			weights.PeriodWeights[period] = *override
		}
	}

	overrides := map[string]struct {
		raw  *float64
		dest *float64
	}{
		"max_period_total": {input.Weights.MaxPeriodTotal, &weights.MaxPeriodTotal},
		"extra_period":     {input.Weights.ExtraPeriod, &weights.ExtraPeriod},
		"lead_change":      {input.Weights.LeadChange, &weights.LeadChange},
		"buzzer_beater":    {input.Weights.BuzzerBeater, &weights.BuzzerBeater},
		"fg3_pct":          {input.Weights.FG3Pct, &weights.FG3Pct},
		"star_performance": {input.Weights.Star, &weights.Star},
		"margin":           {input.Weights.Margin, &weights.Margin},
	}
	for _, o := range overrides {
		if o.raw != nil {
			*o.dest = *o.raw
		}
	}

	for name, o := range overrides {
		if *o.dest < 0 {
			return fmt.Errorf("weight %s must not be negative, got %.3f", name, *o.dest)
		}
	}
	periodSum := 0.0
	for period, w := range weights.PeriodWeights {
		if w < 0 {
			return fmt.Errorf("weight period_q%d must not be negative, got %.3f", period, w)
		}
		periodSum += w
	}
	if periodSum > 1.001 {
		return fmt.Errorf("period weights must not sum past 1.0, got %.3f", periodSum)
	}

	if sum := weights.Sum(); sum > 1.001 {
		return fmt.Errorf("max_period_total plus component weights must not exceed 1.0, got %.3f", sum)
	}

	cfg.Weights = weights
	return nil
}
