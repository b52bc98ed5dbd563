package nbastats

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/AnderssonElin/nba-dashboard/schema"
)

// RecentGames implements contract.StatsClient. It queries the league game
// finder for team rows, keeps finished games only, and returns both team
// rows for the most recent 'window' distinct games, newest first.
func (c *Client) RecentGames(ctx context.Context, window int) ([]schema.RecentGameLine, error) {
	decoded, err := c.getResultSets(ctx, "/leaguegamefinder?PlayerOrTeam=T&LeagueID=00")
	if err != nil {
		return nil, err
	}
	rs, err := decoded.findResultSet("LeagueGameFinderResults")
	if err != nil {
		return nil, err
	}
	index := rs.columnIndex()
	for _, col := range []string{"GAME_ID", "GAME_DATE", "MATCHUP", "TEAM_ABBREVIATION", "WL", "FG_PCT", "FG3_PCT", "PTS"} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("game finder response is missing column %s", col)
		}
	}

	lines := make([]schema.RecentGameLine, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		// A blank win/loss marker means the game has not finished.
		if asString(row[index["WL"]]) == "" {
			continue
		}
		lines = append(lines, schema.RecentGameLine{
			GameID:   asString(row[index["GAME_ID"]]),
			GameDate: asString(row[index["GAME_DATE"]]),
			Matchup:  asString(row[index["MATCHUP"]]),
			TeamAbbr: asString(row[index["TEAM_ABBREVIATION"]]),
			FGPct:    asFloat(row[index["FG_PCT"]]),
			FG3Pct:   asFloat(row[index["FG3_PCT"]]),
			PTS:      asInt(row[index["PTS"]]),
		})
	}

	// Newest first, with game ID as tiebreaker to keep team pairs adjacent.
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].GameDate != lines[j].GameDate {
			return lines[i].GameDate > lines[j].GameDate
		}
		return lines[i].GameID > lines[j].GameID
	})

	seen := make(map[string]struct{})
	trimmed := make([]schema.RecentGameLine, 0, 2*window)
	for _, line := range lines {
		if _, ok := seen[line.GameID]; !ok {
			if len(seen) == window {
				break
			}
			seen[line.GameID] = struct{}{}
		}
		trimmed = append(trimmed, line)
	}
	return trimmed, nil
}

// PlayByPlay implements contract.StatsClient. Rows come back in game order,
// which the scorers depend on.
func (c *Client) PlayByPlay(ctx context.Context, gameID string) ([]schema.PlayEvent, error) {
	path := fmt.Sprintf("/playbyplayv2?GameID=%s&StartPeriod=1&EndPeriod=14", gameID)
	decoded, err := c.getResultSets(ctx, path)
	if err != nil {
		return nil, err
	}
	rs, err := decoded.findResultSet("PlayByPlay")
	if err != nil {
		return nil, err
	}
	index := rs.columnIndex()
	for _, col := range []string{"PERIOD", "PCTIMESTRING", "SCOREMARGIN"} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("play-by-play response is missing column %s", col)
		}
	}

	events := make([]schema.PlayEvent, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		margin, known := parseMargin(row[index["SCOREMARGIN"]])
		events = append(events, schema.PlayEvent{
			Period:      asInt(row[index["PERIOD"]]),
			Clock:       asString(row[index["PCTIMESTRING"]]),
			Margin:      margin,
			MarginKnown: known,
			Description: eventDescription(row, index),
		})
	}
	return events, nil
}

// BoxScore implements contract.StatsClient.
func (c *Client) BoxScore(ctx context.Context, gameID string) ([]schema.BoxScoreLine, error) {
	path := fmt.Sprintf("/boxscoretraditionalv2?GameID=%s", gameID)
	decoded, err := c.getResultSets(ctx, path)
	if err != nil {
		return nil, err
	}
	rs, err := decoded.findResultSet("PlayerStats")
	if err != nil {
		return nil, err
	}
	index := rs.columnIndex()
	for _, col := range []string{"GAME_ID", "TEAM_ABBREVIATION", "PLAYER_NAME", "FGM", "FGA", "FG3M", "FG3A", "PTS"} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("box score response is missing column %s", col)
		}
	}

	lines := make([]schema.BoxScoreLine, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		lines = append(lines, schema.BoxScoreLine{
			GameID:     asString(row[index["GAME_ID"]]),
			TeamAbbr:   asString(row[index["TEAM_ABBREVIATION"]]),
			PlayerName: asString(row[index["PLAYER_NAME"]]),
			FGM:        asInt(row[index["FGM"]]),
			FGA:        asInt(row[index["FGA"]]),
			FG3M:       asInt(row[index["FG3M"]]),
			FG3A:       asInt(row[index["FG3A"]]),
			PTS:        asInt(row[index["PTS"]]),
		})
	}
	return lines, nil
}

// parseMargin decodes the SCOREMARGIN cell. The feed writes "TIE" for tied
// scores, a signed number for scoring events, and null for everything else.
func parseMargin(v any) (margin int, known bool) {
	switch m := v.(type) {
	case string:
		if strings.EqualFold(strings.TrimSpace(m), "TIE") {
			return 0, true
		}
		if n, err := strconv.Atoi(strings.TrimSpace(m)); err == nil {
			return n, true
		}
		return 0, false
	case float64:
		return int(m), true
	default:
		return 0, false
	}
}

// eventDescription joins the home/neutral/visitor description columns,
// whichever are present and non-empty.
func eventDescription(row []any, index map[string]int) string {
	var parts []string
	for _, col := range []string{"HOMEDESCRIPTION", "NEUTRALDESCRIPTION", "VISITORDESCRIPTION"} {
		if i, ok := index[col]; ok {
			if s := asString(row[i]); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, " ")
}
