package nbastats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gameFinderFixture = `{
  "resultSets": [{
    "name": "LeagueGameFinderResults",
    "headers": ["GAME_ID", "GAME_DATE", "MATCHUP", "TEAM_ABBREVIATION", "WL", "FG_PCT", "FG3_PCT", "PTS"],
    "rowSet": [
      ["0022300001", "2026-03-01", "LAL @ BOS", "LAL", "W", 0.48, 0.35, 112],
      ["0022300001", "2026-03-01", "BOS vs. LAL", "BOS", "L", 0.52, 0.41, 108],
      ["0022300002", "2026-03-02", "GSW @ DEN", "GSW", "L", 0.44, 0.50, 101],
      ["0022300002", "2026-03-02", "DEN vs. GSW", "DEN", "W", 0.55, 0.30, 115],
      ["0022300003", "2026-03-03", "MIA @ NYK", "MIA", "", null, null, null]
    ]
  }]
}`

const playByPlayFixture = `{
  "resultSets": [{
    "name": "PlayByPlay",
    "headers": ["PERIOD", "PCTIMESTRING", "SCOREMARGIN", "HOMEDESCRIPTION", "NEUTRALDESCRIPTION", "VISITORDESCRIPTION"],
    "rowSet": [
      [1, "12:00", null, null, "Start of 1st Period", null],
      [1, "10:32", "2", "Davis 12' Jump Shot (2 PTS)", null, null],
      [1, "9:58", "TIE", null, null, "Tatum 3PT Shot (3 PTS)"],
      [4, "0:04", "-1", null, null, "Brown Layup (22 PTS)"]
    ]
  }]
}`

const boxScoreFixture = `{
  "resultSets": [{
    "name": "PlayerStats",
    "headers": ["GAME_ID", "TEAM_ABBREVIATION", "PLAYER_NAME", "FGM", "FGA", "FG3M", "FG3A", "PTS"],
    "rowSet": [
      ["0022300001", "LAL", "Anthony Davis", 15, 24, 1, 3, 38],
      ["0022300001", "BOS", "Jayson Tatum", 11, 22, 5, 12, 30]
    ]
  }]
}`

// newFixtureServer serves canned responses routed by endpoint path, and
// asserts the browser-like headers the stats API requires.
func newFixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "https://www.nba.com/", r.Header.Get("Referer"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		switch {
		case strings.HasPrefix(r.URL.Path, "/leaguegamefinder"):
			_, _ = w.Write([]byte(gameFinderFixture))
		case strings.HasPrefix(r.URL.Path, "/playbyplayv2"):
			_, _ = w.Write([]byte(playByPlayFixture))
		case strings.HasPrefix(r.URL.Path, "/boxscoretraditionalv2"):
			_, _ = w.Write([]byte(boxScoreFixture))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

// TestRecentGames decodes the game finder fixture and drops unfinished games.
func TestRecentGames(t *testing.T) {
	server := newFixtureServer(t)
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	lines, err := client.RecentGames(context.Background(), 10)
	require.NoError(t, err)

	// The unfinished game 0022300003 has a blank WL marker and is skipped.
	require.Len(t, lines, 4)
	// Newest first.
	assert.Equal(t, "0022300002", lines[0].GameID)
	assert.Equal(t, "0022300001", lines[2].GameID)
	assert.Equal(t, "LAL", lines[2].TeamAbbr)
	assert.InDelta(t, 0.48, lines[2].FGPct, 0.001)
	assert.Equal(t, 112, lines[2].PTS)
}

// TestRecentGamesWindow keeps both team rows while trimming to the window.
func TestRecentGamesWindow(t *testing.T) {
	server := newFixtureServer(t)
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	lines, err := client.RecentGames(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, lines[0].GameID, lines[1].GameID)
}

// TestPlayByPlay decodes margins including ties and unknown rows.
func TestPlayByPlay(t *testing.T) {
	server := newFixtureServer(t)
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	events, err := client.PlayByPlay(context.Background(), "0022300001")
	require.NoError(t, err)
	require.Len(t, events, 4)

	assert.Equal(t, 1, events[0].Period)
	assert.False(t, events[0].MarginKnown)
	assert.Equal(t, "Start of 1st Period", events[0].Description)

	assert.True(t, events[1].MarginKnown)
	assert.Equal(t, 2, events[1].Margin)

	assert.True(t, events[2].MarginKnown)
	assert.Equal(t, 0, events[2].Margin) // TIE

	assert.Equal(t, 4, events[3].Period)
	assert.Equal(t, "0:04", events[3].Clock)
	assert.Equal(t, -1, events[3].Margin)
}

// TestBoxScore decodes the player stat lines.
func TestBoxScore(t *testing.T) {
	server := newFixtureServer(t)
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	lines, err := client.BoxScore(context.Background(), "0022300001")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "Anthony Davis", lines[0].PlayerName)
	assert.Equal(t, 38, lines[0].PTS)
	assert.Equal(t, 5, lines[1].FG3M)
	assert.Equal(t, 12, lines[1].FG3A)
}

// TestClientServerError surfaces non-200 responses as errors.
func TestClientServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.RecentGames(context.Background(), 10)
	assert.ErrorContains(t, err, "stats API returned")
}

// TestClientMissingColumn rejects responses without the expected headers.
func TestClientMissingColumn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"resultSets":[{"name":"LeagueGameFinderResults","headers":["GAME_ID"],"rowSet":[]}]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.RecentGames(context.Background(), 10)
	assert.ErrorContains(t, err, "missing column")
}

// TestClientBadJSON rejects malformed payloads.
func TestClientBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.PlayByPlay(context.Background(), "0022300001")
	assert.ErrorContains(t, err, "failed to decode stats response")
}

// TestParseMargin covers the SCOREMARGIN cell variants.
func TestParseMargin(t *testing.T) {
	tests := []struct {
		name       string
		value      any
		wantMargin int
		wantKnown  bool
	}{
		{name: "tie marker", value: "TIE", wantMargin: 0, wantKnown: true},
		{name: "lowercase tie", value: "tie", wantMargin: 0, wantKnown: true},
		{name: "positive string", value: "5", wantMargin: 5, wantKnown: true},
		{name: "negative string", value: "-3", wantMargin: -3, wantKnown: true},
		{name: "numeric", value: float64(7), wantMargin: 7, wantKnown: true},
		{name: "null", value: nil, wantMargin: 0, wantKnown: false},
		{name: "garbage", value: "n/a", wantMargin: 0, wantKnown: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			margin, known := parseMargin(tt.value)
			assert.Equal(t, tt.wantMargin, margin)
			assert.Equal(t, tt.wantKnown, known)
		})
	}
}

// TestEventDescription joins whichever description columns are present.
func TestEventDescription(t *testing.T) {
	index := map[string]int{"HOMEDESCRIPTION": 0, "NEUTRALDESCRIPTION": 1, "VISITORDESCRIPTION": 2}

	assert.Equal(t, "Shot", eventDescription([]any{"Shot", nil, nil}, index))
	assert.Equal(t, "Shot Block", eventDescription([]any{"Shot", nil, "Block"}, index))
	assert.Equal(t, "", eventDescription([]any{nil, nil, nil}, index))
}
