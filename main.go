// main is the entry point for the nbadash CLI.
package main

import (
	"github.com/AnderssonElin/nba-dashboard/cmd"
	"github.com/AnderssonElin/nba-dashboard/internal/contract"
	"github.com/AnderssonElin/nba-dashboard/internal/iocache"
)

func main() {
	defer iocache.CloseCaching()

	cmd.SetCacheManager(iocache.Manager)
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
