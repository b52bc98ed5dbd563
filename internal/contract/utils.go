package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/AnderssonElin/nba-dashboard/schema"
)

// Color variables for console output.
var (
	EliteColor  = color.New(color.FgGreen, color.Bold) // A-range games are must-watch.
	GoodColor   = color.New(color.FgCyan)              // B-range games are worth watching.
	SkipColor   = color.New(color.FgYellow)            // D games are skippable.
	NoDataColor = color.New(color.Faint)               // Games that could not be fully scored.
)

// GetColorGrade returns a colored grade string for console output (table).
func GetColorGrade(grade schema.Grade) string {
	text := string(grade)

	switch grade {
	case schema.GradeAPlus, schema.GradeA:
		return EliteColor.Sprint(text)
	case schema.GradeBPlus, schema.GradeB:
		return GoodColor.Sprint(text)
	case schema.GradeCPlus, schema.GradeC, schema.GradeD:
		return SkipColor.Sprint(text)
	default: // "N/A"
		return NoDataColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for response caching.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".nbadash_cache.db"
	}
	return filepath.Join(homeDir, ".nbadash_cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".nbadash_history.db"
	}
	return filepath.Join(homeDir, ".nbadash_history.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
