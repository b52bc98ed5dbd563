package contract

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AnderssonElin/nba-dashboard/schema"
)

// MockStatsClient is a mock implementation of the StatsClient interface.
type MockStatsClient struct {
	mock.Mock
}

var _ StatsClient = &MockStatsClient{} // Compile-time check

// RecentGames implements the StatsClient interface.
func (m *MockStatsClient) RecentGames(ctx context.Context, window int) ([]schema.RecentGameLine, error) {
	ret := m.Called(ctx, window)
	lines, _ := ret.Get(0).([]schema.RecentGameLine)
	return lines, ret.Error(1)
}

// PlayByPlay implements the StatsClient interface.
func (m *MockStatsClient) PlayByPlay(ctx context.Context, gameID string) ([]schema.PlayEvent, error) {
	ret := m.Called(ctx, gameID)
	events, _ := ret.Get(0).([]schema.PlayEvent)
	return events, ret.Error(1)
}

// BoxScore implements the StatsClient interface.
func (m *MockStatsClient) BoxScore(ctx context.Context, gameID string) ([]schema.BoxScoreLine, error) {
	ret := m.Called(ctx, gameID)
	lines, _ := ret.Get(0).([]schema.BoxScoreLine)
	return lines, ret.Error(1)
}
