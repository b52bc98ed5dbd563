package schema

// Custom string types for type safety.
type (
	// BreakdownKey represents keys used in scoring breakdowns.
	BreakdownKey string

	// Grade represents the letter grade of a game.
	Grade string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// Breakdown keys used in the scoring logic.
const (
	BreakdownPeriods     BreakdownKey = "periods"      // per-period closeness
	BreakdownExtra       BreakdownKey = "extra"        // overtime periods
	BreakdownLeadChanges BreakdownKey = "lead_changes" // second-half lead changes
	BreakdownBuzzer      BreakdownKey = "buzzer"       // late game-deciding shot
	BreakdownFG3         BreakdownKey = "fg3"          // three-point shooting vs baseline
	BreakdownStar        BreakdownKey = "star"         // top individual scorer
	BreakdownMargin      BreakdownKey = "margin"       // closing-minutes margin
)

// All letter grades, best to worst. GradeNA marks a game that could not
// be fully analyzed.
const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeNA    Grade = "N/A"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllBreakdownKeys lists every scoring component in display order.
var AllBreakdownKeys = []BreakdownKey{
	BreakdownPeriods,
	BreakdownExtra,
	BreakdownLeadChanges,
	BreakdownBuzzer,
	BreakdownFG3,
	BreakdownStar,
	BreakdownMargin,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// GetDefaultPeriodWeights returns the default per-period weight map for
// regulation periods. These sum to MaxPeriodTotal in the default config.
func GetDefaultPeriodWeights() map[int]float64 {
	return map[int]float64{
		1: 0.33,
		2: 0.33,
		3: 0.34,
		4: 0.00,
	}
}
