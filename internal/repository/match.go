package repository

import (
	"context"

	"github.com/osse101/ScoreBot_Go/internal/domain"
)

// Match defines the interface for match and participation persistence.
// Writes must be visible to subsequent reads from the same process.
type Match interface {
	// CreateMatch stores the match and its participations, all pending.
	// It sets ID and CreatedAt on the given match.
	CreateMatch(ctx context.Context, match *domain.Match) error
	GetMatch(ctx context.Context, id int64) (*domain.Match, error)

	// ConfirmParticipation flips the player's participation to non-pending
	// and reports whether this flip completed the match. It returns
	// domain.ErrMatchNotFound, domain.ErrNotParticipant or
	// domain.ErrAlreadyConfirmed without changing anything.
	ConfirmParticipation(ctx context.Context, matchID int64, handle string) (*domain.ConfirmOutcome, error)

	ListMatches(ctx context.Context, filter domain.MatchFilter) ([]domain.Match, error)
	// ListPendingMatchesForPlayer returns matches where handle still has to
	// confirm, oldest first
	ListPendingMatchesForPlayer(ctx context.Context, handle string) ([]domain.Match, error)
	ListParticipationsByPlayer(ctx context.Context, handle string) ([]domain.Participation, error)
}
