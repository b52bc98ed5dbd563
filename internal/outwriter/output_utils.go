package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/AnderssonElin/nba-dashboard/internal/contract"
	"github.com/AnderssonElin/nba-dashboard/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// getMaxTableMatchupWidth calculates the maximum width for matchup strings in
// table output based on terminal width and table configuration.
func getMaxTableMatchupWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 40 // Rank + Game ID + Date + Score + Grade with borders/padding

	// Add detail columns with formatting
	if cfg.Detail {
		baseWidth += 80 // Per-component scores plus counters
	}

	// Add explain column
	if cfg.Explain {
		baseWidth += 30 // Explain column with formatting
	}

	// Calculate available space for matchup
	available := termWidth - baseWidth
	if available < 11 {
		// "LAL @ BOS" plus a little room
		return 11
	}
	if available > 30 {
		return 30
	}
	return available
}

// truncateMatchup shortens a matchup string to fit within maxLen.
func truncateMatchup(matchup string, maxLen int) string {
	if len(matchup) <= maxLen {
		return matchup
	}
	if maxLen <= 3 {
		return matchup[:maxLen]
	}
	return matchup[:maxLen-3] + "..."
}

const topNComponents = 3

// componentBreakdown holds a key-value pair from the Breakdown map
// representing a component's contribution to the total score.
type componentBreakdown struct {
	Name  string
	Value float64
}

// formatTopComponentBreakdown names the top 3 components that contributed
// to the final score.
func formatTopComponentBreakdown(r *schema.GameScoreResult) string {
	var components []componentBreakdown

	for k, v := range r.Breakdown {
		if v > 0 {
			components = append(components, componentBreakdown{
				Name:  string(k),
				Value: v,
			})
		}
	}

	if len(components) == 0 {
		return "Not applicable"
	}

	sort.Slice(components, func(i, j int) bool {
		if components[i].Value != components[j].Value {
			return components[i].Value > components[j].Value
		}
		return components[i].Name < components[j].Name
	})

	var parts []string
	limit := min(len(components), topNComponents)
	for i := range limit {
		parts = append(parts, components[i].Name)
	}

	return strings.Join(parts, " > ")
}
