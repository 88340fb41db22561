package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ScoreBot_Go/internal/database/generated"
	"github.com/osse101/ScoreBot_Go/internal/domain"
	"github.com/osse101/ScoreBot_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(ErrMsgFailedToRollback, "error", err)
	}
}

// txHelper pairs a transaction with queries bound to it
type txHelper struct {
	tx pgx.Tx
	q  *generated.Queries
}

// beginTx starts a new transaction. Use SafeRollback on Tx() in defer to ensure proper cleanup.
func beginTx(ctx context.Context, db *pgxpool.Pool, q *generated.Queries) (*txHelper, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, dbError(ErrMsgFailedToBeginTransaction, err)
	}
	return &txHelper{tx: tx, q: q.WithTx(tx)}, nil
}

func (h *txHelper) Commit(ctx context.Context) error {
	if err := h.tx.Commit(ctx); err != nil {
		return dbError(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (h *txHelper) Tx() pgx.Tx {
	return h.tx
}

func (h *txHelper) Queries() *generated.Queries {
	return h.q
}

// dbError wraps err so that it matches both domain.ErrDatabaseError and the original cause
func dbError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrorCodeCheckViolation:
			return fmt.Errorf("%w: %s: %w", domain.ErrInvalidScore, msg, err)
		case PgErrorCodeRaiseException:
			return fmt.Errorf("%w: %s: %w", domain.ErrAlreadyConfirmed, msg, err)
		}
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, msg, err)
}

// timestamptz maps the zero time to NULL so the column default applies
func timestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// ptrTime converts a pgtype.Timestamptz to *time.Time, nil when NULL
func ptrTime(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// optionalInt4 maps a non-positive limit to NULL, which LIMIT treats as no limit
func optionalInt4(n int) pgtype.Int4 {
	if n <= 0 {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(n), Valid: true}
}

func optionalBool(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}
