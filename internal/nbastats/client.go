// Package nbastats is a thin client for the stats.nba.com JSON API.
// Endpoints return tabular resultSets (header names plus untyped rows),
// which this package decodes into the schema types the scorers consume.
package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://stats.nba.com/stats"

// The stats API rejects requests without browser-like headers.
const (
	acceptHeader    = "application/json"
	refererHeader   = "https://www.nba.com/"
	userAgentHeader = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Client talks to the stats.nba.com API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests to point the
// client at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient returns a Client with a sane request timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// resultSetsResponse mirrors the wire shape shared by all stats endpoints.
type resultSetsResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// columnIndex maps header names to their positions in each row.
func (rs resultSet) columnIndex() map[string]int {
	index := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		index[h] = i
	}
	return index
}

// getResultSets performs a GET against the given endpoint path and decodes
// the shared resultSets envelope.
func (c *Client) getResultSets(ctx context.Context, path string) (*resultSetsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Accept", acceptHeader)
	req.Header.Add("Referer", refererHeader)
	req.Header.Add("User-Agent", userAgentHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats API returned %s for %s", resp.Status, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var decoded resultSetsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode stats response: %w", err)
	}
	return &decoded, nil
}

// findResultSet returns the named result set, or the first one when no
// name matches (older endpoints omit names).
func (r *resultSetsResponse) findResultSet(name string) (resultSet, error) {
	for _, rs := range r.ResultSets {
		if rs.Name == name {
			return rs, nil
		}
	}
	if len(r.ResultSets) > 0 {
		return r.ResultSets[0], nil
	}
	return resultSet{}, fmt.Errorf("response has no result sets")
}

// Cell readers. The API mixes strings, floats and nulls inside rowSet, so
// every read is type-switched instead of asserted.

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case json.Number:
		f, _ := n.Float64()
		return f
	default:
		return 0
	}
}

func asInt(v any) int {
	return int(asFloat(v))
}
