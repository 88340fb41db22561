package postgres

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ScoreBot_Go/internal/domain"
	"github.com/osse101/ScoreBot_Go/internal/match"
)

func newMatch(winners, losers []string, ws, ls int) *domain.Match {
	m := &domain.Match{WinnersScore: ws, LosersScore: ls, ReportedBy: winners[0]}
	for _, h := range winners {
		m.Participations = append(m.Participations, domain.Participation{Handle: h, Won: true})
	}
	for _, h := range losers {
		m.Participations = append(m.Participations, domain.Participation{Handle: h, Won: false})
	}
	return m
}

func TestMatchRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewMatchRepository(pool)

	t.Run("CreateAndGet", func(t *testing.T) {
		m := newMatch([]string{"alice", "bob"}, []string{"carol"}, 11, 7)
		require.NoError(t, repo.CreateMatch(ctx, m))
		assert.NotZero(t, m.ID)
		assert.False(t, m.CreatedAt.IsZero())

		got, err := repo.GetMatch(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, 11, got.WinnersScore)
		assert.Equal(t, "alice", got.ReportedBy)
		require.Len(t, got.Participations, 3)
		assert.Equal(t, []string{"alice", "bob", "carol"}, got.PendingHandles())
		assert.True(t, got.Participations[1].Won)
		assert.False(t, got.Participations[2].Won)
		assert.Nil(t, got.Participations[0].ConfirmedAt)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := repo.GetMatch(ctx, 999999)
		assert.ErrorIs(t, err, domain.ErrMatchNotFound)
	})

	t.Run("ScoreConstraint", func(t *testing.T) {
		err := repo.CreateMatch(ctx, newMatch([]string{"alice"}, []string{"bob"}, 3, 11))
		assert.ErrorIs(t, err, domain.ErrInvalidScore)
	})

	t.Run("ConfirmParticipation", func(t *testing.T) {
		m := newMatch([]string{"dave"}, []string{"erin"}, 11, 3)
		require.NoError(t, repo.CreateMatch(ctx, m))

		_, err := repo.ConfirmParticipation(ctx, 999999, "dave")
		assert.ErrorIs(t, err, domain.ErrMatchNotFound)

		_, err = repo.ConfirmParticipation(ctx, m.ID, "zed")
		assert.ErrorIs(t, err, domain.ErrNotParticipant)

		out, err := repo.ConfirmParticipation(ctx, m.ID, "dave")
		require.NoError(t, err)
		assert.False(t, out.FullyConfirmed)
		p, ok := out.Match.Participation("dave")
		require.True(t, ok)
		assert.False(t, p.Pending)
		assert.NotNil(t, p.ConfirmedAt)

		_, err = repo.ConfirmParticipation(ctx, m.ID, "dave")
		assert.ErrorIs(t, err, domain.ErrAlreadyConfirmed)

		out, err = repo.ConfirmParticipation(ctx, m.ID, "erin")
		require.NoError(t, err)
		assert.True(t, out.FullyConfirmed)
		assert.False(t, out.Match.Pending())
	})

	t.Run("PendingFlagCannotRevert", func(t *testing.T) {
		m := newMatch([]string{"fay"}, []string{"gil"}, 5, 0)
		require.NoError(t, repo.CreateMatch(ctx, m))
		_, err := repo.ConfirmParticipation(ctx, m.ID, "fay")
		require.NoError(t, err)

		_, err = pool.Exec(ctx, `UPDATE participations SET pending = TRUE WHERE match_id = $1 AND player_handle = 'fay'`, m.ID)
		assert.Error(t, err)
		assert.ErrorIs(t, dbError("revert", err), domain.ErrAlreadyConfirmed)
	})

	t.Run("ConcurrentConfirmCompletesOnce", func(t *testing.T) {
		players := []string{"p1", "p2", "p3", "p4", "p5", "p6"}
		m := newMatch(players[:3], players[3:], 11, 9)
		require.NoError(t, repo.CreateMatch(ctx, m))

		var wg sync.WaitGroup
		var mu sync.Mutex
		completed := 0
		for round := 0; round < 3; round++ {
			for _, h := range players {
				wg.Add(1)
				go func(handle string) {
					defer wg.Done()
					out, err := repo.ConfirmParticipation(ctx, m.ID, handle)
					if err != nil {
						assert.ErrorIs(t, err, domain.ErrAlreadyConfirmed)
						return
					}
					if out.FullyConfirmed {
						mu.Lock()
						completed++
						mu.Unlock()
					}
				}(h)
			}
		}
		wg.Wait()

		assert.Equal(t, 1, completed)
	})

	t.Run("ListingsAndFilters", func(t *testing.T) {
		a := newMatch([]string{"hal"}, []string{"ivy"}, 11, 2)
		b := newMatch([]string{"ivy"}, []string{"hal"}, 11, 4)
		c := newMatch([]string{"hal"}, []string{"jo"}, 11, 6)
		for _, m := range []*domain.Match{a, b, c} {
			require.NoError(t, repo.CreateMatch(ctx, m))
		}
		_, err := repo.ConfirmParticipation(ctx, b.ID, "hal")
		require.NoError(t, err)
		_, err = repo.ConfirmParticipation(ctx, b.ID, "ivy")
		require.NoError(t, err)

		pendingForHal, err := repo.ListPendingMatchesForPlayer(ctx, "hal")
		require.NoError(t, err)
		require.Len(t, pendingForHal, 2)
		assert.Equal(t, a.ID, pendingForHal[0].ID)
		assert.Equal(t, c.ID, pendingForHal[1].ID)

		pending := true
		desc, err := repo.ListMatches(ctx, domain.MatchFilter{Pending: &pending, Order: domain.SortDescending, Limit: 2})
		require.NoError(t, err)
		require.Len(t, desc, 2)
		assert.Equal(t, c.ID, desc[0].ID)
		assert.Equal(t, a.ID, desc[1].ID)

		confirmed := false
		ranged, err := repo.ListMatches(ctx, domain.MatchFilter{Pending: &confirmed, MinID: a.ID, MaxID: c.ID})
		require.NoError(t, err)
		require.Len(t, ranged, 1)
		assert.Equal(t, b.ID, ranged[0].ID)
		assert.Len(t, ranged[0].Participations, 2)

		history, err := repo.ListParticipationsByPlayer(ctx, "hal")
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, []int64{a.ID, b.ID, c.ID}, []int64{history[0].MatchID, history[1].MatchID, history[2].MatchID})
		assert.False(t, history[1].Pending)
	})

	t.Run("EngineBootstrapMatchesLiveLedger", func(t *testing.T) {
		live := match.NewService(repo, nil)
		require.NoError(t, live.Bootstrap(ctx))

		id, err := live.Report(ctx, "kim", []string{"kim"}, []string{"lou"}, 11, 8)
		require.NoError(t, err)
		_, err = live.ConfirmAll(ctx, "kim")
		require.NoError(t, err)
		res, err := live.Confirm(ctx, "lou", id)
		require.NoError(t, err)
		assert.True(t, res.BecameFullyConfirmed)

		fresh := match.NewService(repo, nil)
		require.NoError(t, fresh.Bootstrap(ctx))

		assert.Empty(t, cmp.Diff(live.Leaderboard(), fresh.Leaderboard()))
		report, err := live.Audit(ctx)
		require.NoError(t, err)
		assert.True(t, report.Consistent, report.Diff)
	})
}
