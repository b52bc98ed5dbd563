package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AnderssonElin/nba-dashboard/core"
	"github.com/AnderssonElin/nba-dashboard/internal/mcp"
	"github.com/AnderssonElin/nba-dashboard/internal/nbastats"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the nbadash MCP server",
	Long:  `Launch an MCP server that allows AI agents to score and rank NBA games via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// MCP mode uses stdio for the protocol, so nothing extra may be
		// written to stdout during setup.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		client := core.NewCachedStatsClient(nbastats.NewClient(), cacheManager)
		return mcp.StartMCPServer(rootCtx, cfg, client, cacheManager)
	},
}
