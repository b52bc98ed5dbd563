package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/AnderssonElin/nba-dashboard/internal/contract"
	"github.com/AnderssonElin/nba-dashboard/internal/parquet"
	"github.com/AnderssonElin/nba-dashboard/schema"
)

// WriteGameResults outputs the ranked game results, dispatching based on the
// output format configured.
func WriteGameResults(output schema.BatchAnalysisOutput, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	enriched := schema.EnrichGames(output.Results)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, enriched)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForGames(csvWriter, enriched, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("--output-file is required for parquet output")
		}
		data := parquet.ConvertEnrichedResults(enriched)
		if err := parquet.WriteRankedGamesParquet(data, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Printf("Wrote %d game records to: %s\n", len(data), cfg.OutputFile)
		return nil
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGameTable(enriched, output.Baseline, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeGameTable generates and writes the human-readable table.
func writeGameTable(games []schema.EnrichedGameResult, baseline schema.RecentBaseline, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Game ID", "Date", "Matchup", "Score", "Grade"}
	if cfg.Detail {
		headers = append(headers,
			"Periods", "OT", "Leads", "Buzzer", "FG3", "Star", "Margin",
			"Lead Cnt", "OT Cnt", "Max Pts", "Avg Margin")
	}
	if cfg.Explain {
		headers = append(headers, "Explain")
	}
	table.Header(headers)

	// 2. Configure alignment for numeric-heavy rows
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxMatchup := getMaxTableMatchupWidth(cfg)
	var data [][]string
	for _, g := range games {
		grade := string(g.Grade)
		if cfg.UseColors {
			grade = contract.GetColorGrade(g.Grade)
		}
		row := []string{
			strconv.Itoa(g.Rank),
			g.GameID,
			g.GameDate,
			truncateMatchup(g.Matchup, maxMatchup),
			fmtFloat(g.TotalScore),
			grade,
		}
		if cfg.Detail {
			row = append(row,
				fmtFloat(g.PeriodScore),
				fmtFloat(g.ExtraPeriodScore),
				fmtFloat(g.LeadChangeScore),
				fmtFloat(g.BuzzerBeaterScore),
				fmtFloat(g.FG3PctScore),
				fmtFloat(g.StarScore),
				fmtFloat(g.MarginScore),
				fmt.Sprintf(intFmt, g.LeadChanges),
				fmt.Sprintf(intFmt, g.OvertimePeriods),
				fmt.Sprintf(intFmt, g.MaxPoints),
				fmtFloat(g.AverageMargin),
			)
		}
		if cfg.Explain {
			row = append(row, formatTopComponentBreakdown(&g.GameScoreResult))
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Summary stats
	if _, err := fmt.Fprintf(writer, "Showing %d games (baseline: %d recent games, max FG3%%: %s)\n",
		len(games), baseline.Games, fmtFloat(baseline.MaxFG3Pct)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scoring completed in %v with %d workers. Cache backend: %s\n",
		duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForGames writes the ranked game results in CSV format.
func writeCSVResultsForGames(w *csv.Writer, games []schema.EnrichedGameResult, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"game_id",
		"game_date",
		"matchup",
		"total_score",
		"grade",
		"score_periods",
		"score_extra",
		"score_lead_changes",
		"score_buzzer",
		"score_fg3",
		"score_star",
		"score_margin",
		"lead_changes",
		"overtime_periods",
		"buzzer_beaters",
		"max_points",
		"average_margin",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, g := range games {
		rec := []string{
			strconv.Itoa(g.Rank),
			g.GameID,
			g.GameDate,
			g.Matchup,
			fmtFloat(g.TotalScore),
			string(g.Grade),
			fmtFloat(g.PeriodScore),
			fmtFloat(g.ExtraPeriodScore),
			fmtFloat(g.LeadChangeScore),
			fmtFloat(g.BuzzerBeaterScore),
			fmtFloat(g.FG3PctScore),
			fmtFloat(g.StarScore),
			fmtFloat(g.MarginScore),
			fmt.Sprintf(intFmt, g.LeadChanges),
			fmt.Sprintf(intFmt, g.OvertimePeriods),
			fmt.Sprintf(intFmt, g.BuzzerBeaters),
			fmt.Sprintf(intFmt, g.MaxPoints),
			fmtFloat(g.AverageMargin),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
