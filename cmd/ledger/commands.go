package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/osse101/ScoreBot_Go/internal/config"
	"github.com/osse101/ScoreBot_Go/internal/database"
	"github.com/osse101/ScoreBot_Go/internal/database/postgres"
	"github.com/osse101/ScoreBot_Go/internal/discord"
	"github.com/osse101/ScoreBot_Go/internal/domain"
	"github.com/osse101/ScoreBot_Go/internal/rating"
	"github.com/osse101/ScoreBot_Go/internal/repository"
)

var errReplayMismatch = errors.New("live leaderboard differs from a replay of the confirmed history")

// withPool opens a connection pool from the server's configuration for the duration of action
func withPool(action func(c *cli.Context, pool *pgxpool.Pool) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
		if err != nil {
			return err
		}
		defer pool.Close()
		return action(c, pool)
	}
}

// withStore is withPool for actions that only need the match store
func withStore(action func(c *cli.Context, repo repository.Match) error) cli.ActionFunc {
	return withPool(func(c *cli.Context, pool *pgxpool.Pool) error {
		return action(c, postgres.NewMatchRepository(pool))
	})
}

func migrateUpAction(c *cli.Context, pool *pgxpool.Pool) error {
	if err := database.Migrate(c.Context, pool); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "Database is up to date")
	return nil
}

func migrateStatusAction(c *cli.Context, pool *pgxpool.Pool) error {
	states, err := database.MigrationStatus(c.Context, pool)
	if err != nil {
		return err
	}
	for _, st := range states {
		state := "pending"
		if st.Applied {
			state = "applied"
		}
		fmt.Fprintf(c.App.Writer, "%05d  %-8s %s\n", st.Version, state, st.Path)
	}
	return nil
}

func replayAction(c *cli.Context, repo repository.Match) error {
	history, err := confirmedHistory(c, repo)
	if err != nil {
		return err
	}
	ledger, err := rating.Replay(history, nil)
	if err != nil {
		return err
	}
	writeLeaderboard(c.App.Writer, ledger, c.Int(minStreakFlag.Name))
	return nil
}

func unconfirmedAction(c *cli.Context, repo repository.Match) error {
	pending := true
	matches, err := repo.ListMatches(c.Context, domain.MatchFilter{
		Pending: &pending,
		Order:   domain.SortDescending,
		Limit:   c.Int("limit"),
	})
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(c.App.Writer, discord.MsgUnconfirmedEmpty)
		return nil
	}
	fmt.Fprintln(c.App.Writer, discord.RenderUnconfirmed(matches, handleName, time.Local))
	return nil
}

func verifyAction(c *cli.Context, repo repository.Match) error {
	history, err := confirmedHistory(c, repo)
	if err != nil {
		return err
	}

	client := discord.NewAPIClient(c.String(apiURLFlag.Name), c.String(apiKeyFlag.Name))
	live, err := client.Leaderboard(c.Context)
	if err != nil {
		return fmt.Errorf("failed to fetch the live leaderboard: %w", err)
	}

	diff, applied, err := verifyReplay(live, history)
	if err != nil {
		return err
	}
	if diff != "" {
		fmt.Fprintf(c.App.Writer, "live (-) vs replayed (+):\n%s\n", diff)
		return errReplayMismatch
	}
	fmt.Fprintf(c.App.Writer, "OK: %d confirmed matches replay to the live leaderboard\n", applied)
	return nil
}

func confirmedHistory(c *cli.Context, repo repository.Match) ([]domain.Match, error) {
	pending := false
	return repo.ListMatches(c.Context, domain.MatchFilter{
		Pending: &pending,
		Order:   domain.SortAscending,
	})
}

// verifyReplay replays history and diffs the result against the live
// standings, keyed by handle. A confirmation that lands between the two
// reads shows up as a difference; run it again before acting on one.
func verifyReplay(live []domain.Standing, history []domain.Match) (diff string, applied int, err error) {
	replayed, err := rating.Replay(history, nil)
	if err != nil {
		return "", 0, err
	}

	liveByHandle := make(map[string]domain.Standing, len(live))
	for _, st := range live {
		liveByHandle[st.Handle] = st
	}
	return cmp.Diff(liveByHandle, replayed.Snapshot()), replayed.Applied(), nil
}

func writeLeaderboard(w io.Writer, ledger *rating.Ledger, minStreak int) {
	standings := ledger.Standings()
	if len(standings) == 0 {
		fmt.Fprintln(w, discord.MsgLeaderboardEmpty)
		return
	}
	fmt.Fprintln(w, discord.RenderLeaderboard(standings, handleName, minStreak))
}

// handleName shows raw handles; the CLI has no chat session to resolve names
func handleName(handle string) string {
	return handle
}
