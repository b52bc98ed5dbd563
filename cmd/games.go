package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AnderssonElin/nba-dashboard/core"
	"github.com/AnderssonElin/nba-dashboard/internal/contract"
)

// gamesCmd scores the most recent finished games and ranks them.
var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Rank the most recent NBA games by excitement score.",
	Long: `Fetch the most recent finished NBA games, score each one for excitement,
and print them ranked best-first.

The excitement score combines:
- How close each regulation period stayed
- Overtime periods
- Lead changes across the game
- Late game-deciding shots
- Three-point shooting against a recent-games baseline
- Star individual performances
- Closeness in the final five minutes

Each game also receives a letter grade (A+ down to D) so you can spot
the must-watch games at a glance.

Examples:
  # Rank the last 20 finished games
  nbadash games

  # Widen the window and show component scores
  nbadash games --recent 50 --detail

  # Show what drove each score
  nbadash games --explain

  # Export findings to CSV for later
  nbadash games --output csv --output-file games.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGames(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run games analysis", err)
		}
	},
}

// gameCmd scores one or more specific games by ID.
var gameCmd = &cobra.Command{
	Use:   "game <game-id> [game-id...]",
	Short: "Score specific NBA games by their game IDs.",
	Long: `Score one or more specific games by their league game IDs.

The recent-games window is still fetched to supply the shooting baseline,
but only the requested games are scored. Games outside the window can be
scored too; they just won't have date and matchup metadata from the feed.

The full component breakdown is always shown for single games.

Examples:
  # Score one game
  nbadash game 0022300001

  # Score several games at once
  nbadash game 0022300001 0022300014`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// A directly requested game always gets the full breakdown.
		cfg.Detail = true
		cfg.Explain = true
		if err := core.ExecuteGames(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run game analysis", err)
		}
	},
}
