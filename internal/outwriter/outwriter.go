// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/AnderssonElin/nba-dashboard/internal/contract"
	"github.com/AnderssonElin/nba-dashboard/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteGames prints ranked game results using the configured output format.
func (ow *OutWriter) WriteGames(output schema.BatchAnalysisOutput, cfg *contract.Config, duration time.Duration) error {
	return WriteGameResults(output, cfg, duration)
}

// WriteWeights prints the active weight configuration using the configured output format.
func (ow *OutWriter) WriteWeights(weights schema.WeightConfig, cfg *contract.Config) error {
	return WriteWeightDefinitions(weights, cfg)
}
