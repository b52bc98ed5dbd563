package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AnderssonElin/nba-dashboard/core"
	"github.com/AnderssonElin/nba-dashboard/internal/contract"
)

// weightsCmd shows the active scoring weights.
var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show the active scoring weight configuration.",
	Long: `Print the weights used to combine the excitement components into
the total score, including any overrides from the config file.

The period cap plus the component weights may not exceed 1.0, so total
scores stay on a 0-100 scale; with the default weights a perfect game
scores exactly 100.

Custom weights go under a 'weights' key in .nbadash.yaml:

  weights:
    margin: 0.30
    star_performance: 0.05

Examples:
  # Show the active weights
  nbadash weights

  # Machine-readable form
  nbadash weights --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWeights(cfg); err != nil {
			contract.LogFatal("Cannot print weights", err)
		}
	},
}
