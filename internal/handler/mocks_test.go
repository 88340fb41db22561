package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ScoreBot_Go/internal/domain"
	"github.com/osse101/ScoreBot_Go/internal/match"
)

// MockMatchService mocks the match.Service interface
type MockMatchService struct {
	mock.Mock
}

func (m *MockMatchService) Report(ctx context.Context, reporter string, winners, losers []string, winnersScore, losersScore int) (int64, error) {
	args := m.Called(ctx, reporter, winners, losers, winnersScore, losersScore)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMatchService) ReportGames(ctx context.Context, reporter string, team1, team2 []string, scores []domain.Score) ([]int64, error) {
	args := m.Called(ctx, reporter, team1, team2, scores)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockMatchService) Confirm(ctx context.Context, handle string, matchID int64) (domain.ConfirmResult, error) {
	args := m.Called(ctx, handle, matchID)
	return args.Get(0).(domain.ConfirmResult), args.Error(1)
}

func (m *MockMatchService) ConfirmAll(ctx context.Context, handle string) ([]domain.ConfirmResult, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConfirmResult), args.Error(1)
}

func (m *MockMatchService) ConfirmRange(ctx context.Context, handle string, lower, upper int64) ([]domain.ConfirmResult, error) {
	args := m.Called(ctx, handle, lower, upper)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConfirmResult), args.Error(1)
}

func (m *MockMatchService) Bootstrap(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockMatchService) Rebuild(ctx context.Context, reason string) error {
	return m.Called(ctx, reason).Error(0)
}

func (m *MockMatchService) Audit(ctx context.Context) (*match.AuditReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*match.AuditReport), args.Error(1)
}

func (m *MockMatchService) Standing(handle string) domain.Standing {
	return m.Called(handle).Get(0).(domain.Standing)
}

func (m *MockMatchService) Leaderboard() []domain.Standing {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Standing)
}

func (m *MockMatchService) GetMatch(ctx context.Context, id int64) (*domain.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *MockMatchService) UnconfirmedMatches(ctx context.Context, limit int) ([]domain.Match, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Match), args.Error(1)
}

func (m *MockMatchService) PlayerHistory(ctx context.Context, handle string) ([]domain.Participation, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Participation), args.Error(1)
}
