package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ScoreBot_Go/internal/database/generated"
	"github.com/osse101/ScoreBot_Go/internal/domain"
	"github.com/osse101/ScoreBot_Go/internal/repository"
)

type matchRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewMatchRepository creates a new PostgreSQL match store
func NewMatchRepository(db *pgxpool.Pool) repository.Match {
	return &matchRepository{
		db: db,
		q:  generated.New(db),
	}
}

// CreateMatch inserts the match and all of its participations in one transaction
func (r *matchRepository) CreateMatch(ctx context.Context, match *domain.Match) error {
	h, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return err
	}
	defer SafeRollback(ctx, h.Tx())

	row, err := h.Queries().CreateMatch(ctx, generated.CreateMatchParams{
		WinnersScore: int32(match.WinnersScore),
		LosersScore:  int32(match.LosersScore),
		ReportedBy:   match.ReportedBy,
		CreatedAt:    timestamptz(match.CreatedAt),
	})
	if err != nil {
		return dbError(ErrMsgFailedToInsertMatch, err)
	}
	match.ID = row.MatchID
	match.CreatedAt = row.CreatedAt.Time

	for i := range match.Participations {
		p := &match.Participations[i]
		p.MatchID = match.ID
		p.Pending = true
		p.ConfirmedAt = nil
		if err := h.Queries().CreateParticipation(ctx, generated.CreateParticipationParams{
			MatchID:      p.MatchID,
			PlayerHandle: p.Handle,
			Won:          p.Won,
		}); err != nil {
			return dbError(ErrMsgFailedToInsertParticipations, err)
		}
	}

	return h.Commit(ctx)
}

// GetMatch returns the match with its participations in insertion order
func (r *matchRepository) GetMatch(ctx context.Context, id int64) (*domain.Match, error) {
	return getMatch(ctx, r.q, id)
}

// ConfirmParticipation locks the match row, flips the player's pending flag
// and reports whether that flip left the match without pending participations.
// Holding the row lock until commit serializes concurrent confirmations of
// the same match across processes.
func (r *matchRepository) ConfirmParticipation(ctx context.Context, matchID int64, handle string) (*domain.ConfirmOutcome, error) {
	h, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	defer SafeRollback(ctx, h.Tx())
	q := h.Queries()

	if _, err := q.LockMatch(ctx, matchID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrMatchNotFound, matchID)
		}
		return nil, dbError(ErrMsgFailedToLockMatch, err)
	}

	state, err := q.GetParticipationState(ctx, generated.GetParticipationStateParams{
		MatchID:      matchID,
		PlayerHandle: handle,
	})
	if err != nil {
		return nil, dbError(ErrMsgFailedToReadParticipation, err)
	}
	if state.Participations == 0 {
		return nil, fmt.Errorf("%w: %s in match %d", domain.ErrNotParticipant, handle, matchID)
	}
	if !state.AnyPending {
		return nil, fmt.Errorf("%w: %s in match %d", domain.ErrAlreadyConfirmed, handle, matchID)
	}

	if _, err := q.ConfirmParticipation(ctx, generated.ConfirmParticipationParams{
		MatchID:      matchID,
		PlayerHandle: handle,
	}); err != nil {
		return nil, dbError(ErrMsgFailedToFlipParticipation, err)
	}

	match, err := getMatch(ctx, q, matchID)
	if err != nil {
		return nil, err
	}

	if err := h.Commit(ctx); err != nil {
		return nil, err
	}

	return &domain.ConfirmOutcome{FullyConfirmed: !match.Pending(), Match: match}, nil
}

// ListMatches returns matches ordered by creation time
func (r *matchRepository) ListMatches(ctx context.Context, filter domain.MatchFilter) ([]domain.Match, error) {
	rows, err := r.q.ListMatches(ctx, generated.ListMatchesParams{
		Pending:    optionalBool(filter.Pending),
		MinID:      filter.MinID,
		MaxID:      filter.MaxID,
		Descending: filter.Order == domain.SortDescending,
		RowLimit:   optionalInt4(filter.Limit),
	})
	if err != nil {
		return nil, dbError(ErrMsgFailedToListMatches, err)
	}
	return withParticipations(ctx, r.q, rows)
}

// ListPendingMatchesForPlayer returns, oldest first, the matches the player still has to confirm
func (r *matchRepository) ListPendingMatchesForPlayer(ctx context.Context, handle string) ([]domain.Match, error) {
	rows, err := r.q.ListPendingMatchesForPlayer(ctx, handle)
	if err != nil {
		return nil, dbError(ErrMsgFailedToListMatches, err)
	}
	return withParticipations(ctx, r.q, rows)
}

// ListParticipationsByPlayer returns every participation of the player by match id
func (r *matchRepository) ListParticipationsByPlayer(ctx context.Context, handle string) ([]domain.Participation, error) {
	rows, err := r.q.ListParticipationsByPlayer(ctx, handle)
	if err != nil {
		return nil, dbError(ErrMsgFailedToListParticipations, err)
	}
	out := make([]domain.Participation, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapParticipation(row))
	}
	return out, nil
}

func getMatch(ctx context.Context, q *generated.Queries, id int64) (*domain.Match, error) {
	row, err := q.GetMatch(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", domain.ErrMatchNotFound, id)
	}
	if err != nil {
		return nil, dbError(ErrMsgFailedToGetMatch, err)
	}
	matches, err := withParticipations(ctx, q, []generated.Match{row})
	if err != nil {
		return nil, err
	}
	return &matches[0], nil
}

// withParticipations maps match rows and attaches their participations with one query
func withParticipations(ctx context.Context, q *generated.Queries, rows []generated.Match) ([]domain.Match, error) {
	matches := make([]domain.Match, 0, len(rows))
	if len(rows) == 0 {
		return matches, nil
	}

	index := make(map[int64]int, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		index[row.MatchID] = len(matches)
		ids = append(ids, row.MatchID)
		matches = append(matches, domain.Match{
			ID:           row.MatchID,
			WinnersScore: int(row.WinnersScore),
			LosersScore:  int(row.LosersScore),
			ReportedBy:   row.ReportedBy,
			CreatedAt:    row.CreatedAt.Time,
		})
	}

	prows, err := q.ListParticipationsByMatchIDs(ctx, ids)
	if err != nil {
		return nil, dbError(ErrMsgFailedToListParticipations, err)
	}
	for _, p := range prows {
		i := index[p.MatchID]
		matches[i].Participations = append(matches[i].Participations, mapParticipation(p))
	}
	return matches, nil
}

func mapParticipation(row generated.Participation) domain.Participation {
	return domain.Participation{
		MatchID:     row.MatchID,
		Handle:      row.PlayerHandle,
		Won:         row.Won,
		Pending:     row.Pending,
		ConfirmedAt: ptrTime(row.ConfirmedAt),
	}
}
