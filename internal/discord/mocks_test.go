package discord

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/osse101/ScoreBot_Go/internal/domain"
	"github.com/osse101/ScoreBot_Go/internal/handler"
)

// MockAPIClient is a hand-written API double. Unset funcs return zero values.
type MockAPIClient struct {
	ReportMatchFunc  func(ctx context.Context, req handler.ReportMatchRequest) (*handler.ReportMatchResponse, error)
	ConfirmFunc      func(ctx context.Context, player string, matchID int64) (*domain.ConfirmResult, error)
	ConfirmAllFunc   func(ctx context.Context, player string) (*handler.ConfirmBatchResponse, error)
	ConfirmRangeFunc func(ctx context.Context, player string, from, to int64) (*handler.ConfirmBatchResponse, error)
	LeaderboardFunc  func(ctx context.Context) ([]domain.Standing, error)
	UnconfirmedFunc  func(ctx context.Context, limit int) ([]domain.Match, error)
	PlayerFunc       func(ctx context.Context, handle string) (*domain.Standing, error)
	HealthFunc       func(ctx context.Context) error

	mu    sync.Mutex
	calls []string
}

func (m *MockAPIClient) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

// Calls returns the names of the API methods invoked so far
func (m *MockAPIClient) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockAPIClient) ReportMatch(ctx context.Context, req handler.ReportMatchRequest) (*handler.ReportMatchResponse, error) {
	m.record("ReportMatch")
	if m.ReportMatchFunc != nil {
		return m.ReportMatchFunc(ctx, req)
	}
	return &handler.ReportMatchResponse{}, nil
}

func (m *MockAPIClient) Confirm(ctx context.Context, player string, matchID int64) (*domain.ConfirmResult, error) {
	m.record("Confirm")
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, player, matchID)
	}
	return &domain.ConfirmResult{MatchID: matchID, Status: domain.ConfirmStatusNotFound}, nil
}

func (m *MockAPIClient) ConfirmAll(ctx context.Context, player string) (*handler.ConfirmBatchResponse, error) {
	m.record("ConfirmAll")
	if m.ConfirmAllFunc != nil {
		return m.ConfirmAllFunc(ctx, player)
	}
	return &handler.ConfirmBatchResponse{}, nil
}

func (m *MockAPIClient) ConfirmRange(ctx context.Context, player string, from, to int64) (*handler.ConfirmBatchResponse, error) {
	m.record("ConfirmRange")
	if m.ConfirmRangeFunc != nil {
		return m.ConfirmRangeFunc(ctx, player, from, to)
	}
	return &handler.ConfirmBatchResponse{}, nil
}

func (m *MockAPIClient) Leaderboard(ctx context.Context) ([]domain.Standing, error) {
	m.record("Leaderboard")
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(ctx)
	}
	return nil, nil
}

func (m *MockAPIClient) Unconfirmed(ctx context.Context, limit int) ([]domain.Match, error) {
	m.record("Unconfirmed")
	if m.UnconfirmedFunc != nil {
		return m.UnconfirmedFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockAPIClient) Player(ctx context.Context, handle string) (*domain.Standing, error) {
	m.record("Player")
	if m.PlayerFunc != nil {
		return m.PlayerFunc(ctx, handle)
	}
	return nil, errors.New("no such player")
}

func (m *MockAPIClient) Health(ctx context.Context) error {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return nil
}

// recordingSender keeps every message instead of posting it
type recordingSender struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (s *recordingSender) Send(_ context.Context, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, content)
	return nil
}

func (s *recordingSender) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.messages...)
}

func plainNames(handle string) string {
	return "user" + handle
}

// newTestBot builds a bot around mocks, with UTC times and a streak threshold of 3
func newTestBot(t *testing.T, api *MockAPIClient) (*Bot, *recordingSender) {
	t.Helper()
	sender := &recordingSender{}
	b := newBot(Config{
		ChannelID:       "chan",
		MinStreakLength: 3,
		TimeZone:        time.UTC,
	}, api, sender, plainNames)
	return b, sender
}
