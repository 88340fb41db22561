package match

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/osse101/ScoreBot_Go/internal/concurrency"
	"github.com/osse101/ScoreBot_Go/internal/domain"
	"github.com/osse101/ScoreBot_Go/internal/event"
	"github.com/osse101/ScoreBot_Go/internal/logger"
	"github.com/osse101/ScoreBot_Go/internal/metrics"
	"github.com/osse101/ScoreBot_Go/internal/rating"
	"github.com/osse101/ScoreBot_Go/internal/repository"
)

// Service defines the match confirmation engine
type Service interface {
	// Report stores a pending match. The side with the higher score becomes the winners.
	Report(ctx context.Context, reporter string, winners, losers []string, winnersScore, losersScore int) (int64, error)
	// ReportGames stores one pending match per score of a series between team1 and team2
	ReportGames(ctx context.Context, reporter string, team1, team2 []string, scores []domain.Score) ([]int64, error)

	Confirm(ctx context.Context, handle string, matchID int64) (domain.ConfirmResult, error)
	ConfirmAll(ctx context.Context, handle string) ([]domain.ConfirmResult, error)
	// ConfirmRange returns only the confirmations that flipped a participation
	ConfirmRange(ctx context.Context, handle string, lower, upper int64) ([]domain.ConfirmResult, error)

	Bootstrap(ctx context.Context) error
	Rebuild(ctx context.Context, reason string) error
	Audit(ctx context.Context) (*AuditReport, error)

	Standing(handle string) domain.Standing
	Leaderboard() []domain.Standing

	GetMatch(ctx context.Context, id int64) (*domain.Match, error)
	UnconfirmedMatches(ctx context.Context, limit int) ([]domain.Match, error)
	PlayerHistory(ctx context.Context, handle string) ([]domain.Participation, error)
}

// AuditReport is the result of comparing the live ledger with a fresh replay
type AuditReport struct {
	Consistent bool
	Matches    int
	Players    int
	// InFlight counts confirmed matches whose confirmation had not reached the
	// ledger yet; they are left out of the replay
	InFlight int
	// Diff is a cmp.Diff of live (-) against replayed (+) standings
	Diff string
}

type service struct {
	repo  repository.Match
	bus   event.Bus
	locks *concurrency.LockManager[int64]
	now   func() time.Time

	ledger atomic.Pointer[rating.Ledger]

	// applyMu serializes every ledger mutation and guards the fields below
	applyMu sync.Mutex
	last    *domain.Match
	applied map[int64]map[string]int

	// inflight counts, per match, confirmations between the store flip and the ledger
	inflightMu sync.Mutex
	inflight   map[int64]int
}

// NewService creates the engine with an empty ledger; call Bootstrap before serving
func NewService(repo repository.Match, bus event.Bus) Service {
	s := &service{
		repo:     repo,
		bus:      bus,
		locks:    concurrency.NewLockManager[int64](),
		now:      func() time.Time { return time.Now().UTC() },
		applied:  make(map[int64]map[string]int),
		inflight: make(map[int64]int),
	}
	s.ledger.Store(rating.NewLedger())
	return s
}

// Report validates and stores a pending match
func (s *service) Report(ctx context.Context, reporter string, winners, losers []string, winnersScore, losersScore int) (int64, error) {
	log := logger.FromContext(ctx)

	if winnersScore < 0 || losersScore < 0 {
		return 0, fmt.Errorf("%w: "+ErrMsgNegativeScore, domain.ErrInvalidScore, winnersScore, losersScore)
	}
	if err := validateTeam(winners); err != nil {
		return 0, err
	}
	if err := validateTeam(losers); err != nil {
		return 0, err
	}
	if losersScore > winnersScore {
		winners, losers = losers, winners
		winnersScore, losersScore = losersScore, winnersScore
	}

	m := &domain.Match{
		WinnersScore:   winnersScore,
		LosersScore:    losersScore,
		ReportedBy:     reporter,
		CreatedAt:      s.now(),
		Participations: make([]domain.Participation, 0, len(winners)+len(losers)),
	}
	for _, h := range winners {
		m.Participations = append(m.Participations, domain.Participation{Handle: h, Won: true, Pending: true})
	}
	for _, h := range losers {
		m.Participations = append(m.Participations, domain.Participation{Handle: h, Won: false, Pending: true})
	}

	if err := s.repo.CreateMatch(ctx, m); err != nil {
		return 0, fmt.Errorf(ErrMsgReportFailed, err)
	}

	log.Info(LogMsgMatchReported, "match_id", m.ID, "reported_by", reporter,
		"winners", winners, "losers", losers, "score", fmt.Sprintf("%d-%d", winnersScore, losersScore))
	s.publish(ctx, event.NewMatchReportedEvent(m.ID, reporter, winners, losers, winnersScore, losersScore))

	return m.ID, nil
}

// ReportGames reports each score of a series as its own match
func (s *service) ReportGames(ctx context.Context, reporter string, team1, team2 []string, scores []domain.Score) ([]int64, error) {
	if len(scores) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidScore, ErrMsgNoScores)
	}
	for _, sc := range scores {
		if sc.Team1 < 0 || sc.Team2 < 0 {
			return nil, fmt.Errorf("%w: "+ErrMsgNegativeScore, domain.ErrInvalidScore, sc.Team1, sc.Team2)
		}
	}

	ids := make([]int64, 0, len(scores))
	for _, sc := range scores {
		id, err := s.Report(ctx, reporter, team1, team2, sc.Team1, sc.Team2)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Confirm flips the player's participation and applies the match to the
// ledger when this was the last outstanding confirmation
func (s *service) Confirm(ctx context.Context, handle string, matchID int64) (domain.ConfirmResult, error) {
	result := domain.ConfirmResult{MatchID: matchID}
	err := s.locks.WithLock(matchID, func() error {
		var err error
		result, err = s.confirmLocked(ctx, handle, matchID)
		return err
	})
	if err != nil {
		return result, err
	}

	switch {
	case result.Status == domain.ConfirmStatusNotFound:
		// Ids that never matched a row would otherwise keep a mutex forever
		s.locks.Forget(matchID)
	case result.BecameFullyConfirmed:
		// Nothing can flip a fully confirmed match again
		s.locks.Forget(matchID)
	}

	if result.Confirmed() {
		s.publish(ctx, event.NewMatchConfirmedEvent(matchID, handle, result.BecameFullyConfirmed, result.Deltas))
	}
	return result, nil
}

// confirmLocked runs under the match lock
func (s *service) confirmLocked(ctx context.Context, handle string, matchID int64) (domain.ConfirmResult, error) {
	log := logger.FromContext(ctx)
	result := domain.ConfirmResult{MatchID: matchID}

	s.beginFlip(matchID)
	defer s.endFlip(matchID)

	outcome, err := s.repo.ConfirmParticipation(ctx, matchID, handle)
	switch {
	case errors.Is(err, domain.ErrMatchNotFound):
		result.Status = domain.ConfirmStatusNotFound
	case errors.Is(err, domain.ErrNotParticipant):
		result.Status = domain.ConfirmStatusNotParticipant
	case errors.Is(err, domain.ErrAlreadyConfirmed):
		result.Status = domain.ConfirmStatusAlreadyConfirmed
	case err != nil:
		return result, fmt.Errorf(ErrMsgConfirmFailed, matchID, err)
	default:
		result.Status = domain.ConfirmStatusConfirmed
	}
	metrics.Confirmations.WithLabelValues(string(result.Status)).Inc()

	if !result.Confirmed() {
		log.Debug(LogMsgConfirmSkipped, "match_id", matchID, "player", handle, "status", result.Status)
		return result, nil
	}
	log.Info(LogMsgParticipationFlipped, "match_id", matchID, "player", handle, "fully_confirmed", outcome.FullyConfirmed)

	if !outcome.FullyConfirmed {
		return result, nil
	}
	deltas, err := s.applyConfirmed(ctx, outcome.Match)
	if err != nil {
		log.Error(LogMsgApplyFailed, "match_id", matchID, "error", err)
		return result, fmt.Errorf(ErrMsgApplyFailed, matchID, err)
	}
	result.BecameFullyConfirmed = true
	result.Deltas = deltas
	log.Info(LogMsgMatchFullyConfirmed, "match_id", matchID, "deltas", deltas)
	return result, nil
}

// beginFlip marks a confirmation of matchID as possibly committed in the
// store but not yet applied to the ledger
func (s *service) beginFlip(matchID int64) {
	s.inflightMu.Lock()
	s.inflight[matchID]++
	s.inflightMu.Unlock()
}

func (s *service) endFlip(matchID int64) {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	if s.inflight[matchID] <= 1 {
		delete(s.inflight, matchID)
		return
	}
	s.inflight[matchID]--
}

// isInFlight reports whether a confirmation of matchID has yet to reach the ledger
func (s *service) isInFlight(matchID int64) bool {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	return s.inflight[matchID] > 0
}

// ConfirmAll confirms every pending participation of handle, oldest match first
func (s *service) ConfirmAll(ctx context.Context, handle string) ([]domain.ConfirmResult, error) {
	pending, err := s.pendingFor(ctx, handle)
	if err != nil {
		return nil, err
	}

	results := make([]domain.ConfirmResult, 0, len(pending))
	for i := range pending {
		res, err := s.Confirm(ctx, handle, pending[i].ID)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// ConfirmRange confirms the matches with ids in [lower, upper] that are
// pending for handle. Missing, foreign and already confirmed ids are skipped.
func (s *service) ConfirmRange(ctx context.Context, handle string, lower, upper int64) ([]domain.ConfirmResult, error) {
	if lower > upper {
		return nil, fmt.Errorf("%w: "+ErrMsgRangeOrder, domain.ErrInvalidMatchRange, lower, upper)
	}

	pending, err := s.pendingFor(ctx, handle)
	if err != nil {
		return nil, err
	}

	var confirmed []domain.ConfirmResult
	for i := range pending {
		if pending[i].ID < lower || pending[i].ID > upper {
			continue
		}
		res, err := s.Confirm(ctx, handle, pending[i].ID)
		if err != nil {
			return confirmed, err
		}
		if res.Confirmed() {
			confirmed = append(confirmed, res)
		}
	}
	return confirmed, nil
}

// Bootstrap seeds the ledger from every confirmed match in the store
func (s *service) Bootstrap(ctx context.Context) error {
	return s.Rebuild(ctx, RebuildReasonBootstrap)
}

// Rebuild replaces the live ledger with a replay of the store
func (s *service) Rebuild(ctx context.Context, reason string) error {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	_, err := s.rebuildLocked(ctx, reason)
	return err
}

// Audit replays the store into a scratch ledger and compares it with the live one
func (s *service) Audit(ctx context.Context) (*AuditReport, error) {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	history, err := s.confirmedHistory(ctx)
	if err != nil {
		return nil, err
	}

	// A confirmation that committed but still waits for applyMu would show up
	// as divergence; it cannot finish while we hold the lock.
	settled := history[:0:0]
	inflight := 0
	for i := range history {
		if _, ok := s.applied[history[i].ID]; !ok && s.isInFlight(history[i].ID) {
			inflight++
			continue
		}
		settled = append(settled, history[i])
	}

	replayed, err := rating.Replay(settled, nil)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReplayFailed, err)
	}

	diff := cmp.Diff(s.ledger.Load().Snapshot(), replayed.Snapshot())
	report := &AuditReport{
		Consistent: diff == "",
		Matches:    replayed.Applied(),
		Players:    replayed.Len(),
		InFlight:   inflight,
		Diff:       diff,
	}
	if !report.Consistent {
		logger.FromContext(ctx).Warn(LogMsgLedgerAuditMismatch, "diff", diff)
	} else if inflight > 0 {
		logger.FromContext(ctx).Debug(LogMsgAuditSkippedInFlight, "in_flight", inflight)
	}
	return report, nil
}

// Standing returns the current ledger entry of handle
func (s *service) Standing(handle string) domain.Standing {
	return s.ledger.Load().Get(handle)
}

// Leaderboard returns every rated player, highest rating first
func (s *service) Leaderboard() []domain.Standing {
	return s.ledger.Load().Standings()
}

func (s *service) GetMatch(ctx context.Context, id int64) (*domain.Match, error) {
	m, err := s.repo.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetMatchFailed, id, err)
	}
	return m, nil
}

// UnconfirmedMatches lists pending matches, newest first
func (s *service) UnconfirmedMatches(ctx context.Context, limit int) ([]domain.Match, error) {
	if limit <= 0 {
		limit = DefaultUnconfirmedLimit
	}
	pending := true
	matches, err := s.repo.ListMatches(ctx, domain.MatchFilter{
		Pending: &pending,
		Order:   domain.SortDescending,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListMatchesFailed, err)
	}
	return matches, nil
}

func (s *service) PlayerHistory(ctx context.Context, handle string) ([]domain.Participation, error) {
	if handle == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgHandleRequired)
	}
	ps, err := s.repo.ListParticipationsByPlayer(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgPlayerHistoryFailed, handle, err)
	}
	return ps, nil
}

// applyConfirmed folds a freshly confirmed match into the ledger. A match
// older than the newest applied one forces a full replay so the ledger keeps
// matching creation order.
func (s *service) applyConfirmed(ctx context.Context, m *domain.Match) (map[string]int, error) {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	if deltas, ok := s.applied[m.ID]; ok {
		logger.FromContext(ctx).Info(LogMsgAlreadyApplied, "match_id", m.ID)
		return deltas, nil
	}

	if s.last != nil && m.Before(s.last) {
		logger.FromContext(ctx).Warn(LogMsgOutOfOrderConfirm, "match_id", m.ID, "newest_applied", s.last.ID)
		if _, err := s.rebuildLocked(ctx, RebuildReasonOutOfOrder); err != nil {
			return nil, err
		}
		deltas, ok := s.applied[m.ID]
		if !ok {
			return nil, fmt.Errorf("%w: match %d missing from replay", domain.ErrMatchNotFound, m.ID)
		}
		return deltas, nil
	}

	ledger := s.ledger.Load()
	deltas, err := ledger.Apply(m)
	if err != nil {
		return nil, err
	}
	s.applied[m.ID] = deltas
	s.last = m
	metrics.LedgerPlayers.Set(float64(ledger.Len()))
	return deltas, nil
}

func (s *service) rebuildLocked(ctx context.Context, reason string) (*rating.Ledger, error) {
	history, err := s.confirmedHistory(ctx)
	if err != nil {
		return nil, err
	}

	applied := make(map[int64]map[string]int, len(history))
	var last *domain.Match
	ledger, err := rating.Replay(history, func(m *domain.Match, deltas map[string]int) {
		applied[m.ID] = deltas
		last = m
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReplayFailed, err)
	}

	s.ledger.Store(ledger)
	s.applied = applied
	s.last = last

	logger.FromContext(ctx).Info(LogMsgLedgerRebuilt, "reason", reason, "matches", ledger.Applied(), "players", ledger.Len())
	s.publish(ctx, event.NewLedgerRebuiltEvent(reason, ledger.Applied(), ledger.Len()))
	return ledger, nil
}

func (s *service) confirmedHistory(ctx context.Context) ([]domain.Match, error) {
	pending := false
	matches, err := s.repo.ListMatches(ctx, domain.MatchFilter{
		Pending: &pending,
		Order:   domain.SortAscending,
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadHistoryFailed, err)
	}
	return matches, nil
}

func (s *service) pendingFor(ctx context.Context, handle string) ([]domain.Match, error) {
	matches, err := s.repo.ListPendingMatchesForPlayer(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListPendingFailed, handle, err)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Before(&matches[j])
	})
	return matches, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func validateTeam(team []string) error {
	if len(team) == 0 {
		return fmt.Errorf("%w: empty side", domain.ErrInvalidTeam)
	}
	for _, h := range team {
		if h == "" {
			return fmt.Errorf("%w: %s", domain.ErrInvalidTeam, ErrMsgEmptyHandleInTeam)
		}
	}
	return nil
}
