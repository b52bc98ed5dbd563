package outwriter

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/AnderssonElin/nba-dashboard/internal/contract"
	"github.com/AnderssonElin/nba-dashboard/schema"
)

// weightRow is one displayable weight entry.
type weightRow struct {
	Component   string  `json:"component"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// WriteWeightDefinitions outputs the active scoring weights, dispatching
// based on the output format configured.
func WriteWeightDefinitions(weights schema.WeightConfig, cfg *contract.Config) error {
	rows := buildWeightRows(weights)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWeightTable(rows, weights, cfg, w)
		}, "Wrote table")
	}
}

// buildWeightRows flattens a weight config into display rows.
func buildWeightRows(weights schema.WeightConfig) []weightRow {
	var rows []weightRow

	periods := make([]int, 0, len(weights.PeriodWeights))
	for p := range weights.PeriodWeights {
		periods = append(periods, p)
	}
	sort.Ints(periods)
	for _, p := range periods {
		rows = append(rows, weightRow{
			Component:   fmt.Sprintf("period_q%d", p),
			Weight:      weights.PeriodWeights[p],
			Description: fmt.Sprintf("Closeness of period %d, scaled by the period cap", p),
		})
	}

	rows = append(rows,
		weightRow{"max_period_total", weights.MaxPeriodTotal, "Cap on the summed period contribution"},
		weightRow{"extra_period", weights.ExtraPeriod, "Bonus for overtime periods"},
		weightRow{"lead_change", weights.LeadChange, "Lead changes across the game"},
		weightRow{"buzzer_beater", weights.BuzzerBeater, "Late game-deciding shots"},
		weightRow{"fg3_pct", weights.FG3Pct, "Three-point shooting vs recent baseline"},
		weightRow{"star_performance", weights.Star, "High-scoring individual performances"},
		weightRow{"margin", weights.Margin, "Closeness in the final five minutes"},
	)
	return rows
}

// writeWeightTable generates and writes the human-readable weight table.
func writeWeightTable(rows []weightRow, weights schema.WeightConfig, cfg *contract.Config, writer io.Writer) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Component", "Weight", "Description"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, r := range rows {
		data = append(data, []string{r.Component, fmtFloat(r.Weight), r.Description})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Total weight: %s (a perfect game scores %s)\n",
		fmtFloat(weights.Sum()), fmtFloat(weights.Sum()*100)); err != nil {
		return err
	}
	return nil
}
