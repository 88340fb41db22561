package match

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/osse101/ScoreBot_Go/internal/domain"
)

// ThreadSafeMockRepository is an in-memory repository.Match for tests
type ThreadSafeMockRepository struct {
	mu      sync.Mutex
	matches map[int64]*domain.Match
	nextID  int64

	createErr  error
	confirmErr error
	listErr    error

	// flips counts successful pending->confirmed transitions per match
	flips map[int64]int
}

func NewThreadSafeMockRepository() *ThreadSafeMockRepository {
	return &ThreadSafeMockRepository{
		matches: make(map[int64]*domain.Match),
		flips:   make(map[int64]int),
	}
}

// seed stores a match under its own id, bypassing id assignment
func (m *ThreadSafeMockRepository) seed(match domain.Match) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range match.Participations {
		match.Participations[i].MatchID = match.ID
	}
	stored := cloneMatch(match)
	m.matches[match.ID] = &stored
	if match.ID > m.nextID {
		m.nextID = match.ID
	}
}

func (m *ThreadSafeMockRepository) CreateMatch(ctx context.Context, match *domain.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	match.ID = m.nextID
	for i := range match.Participations {
		match.Participations[i].MatchID = match.ID
	}
	stored := cloneMatch(*match)
	m.matches[match.ID] = &stored
	return nil
}

func (m *ThreadSafeMockRepository) GetMatch(ctx context.Context, id int64) (*domain.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.matches[id]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	out := cloneMatch(*stored)
	return &out, nil
}

func (m *ThreadSafeMockRepository) ConfirmParticipation(ctx context.Context, matchID int64, handle string) (*domain.ConfirmOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.confirmErr != nil {
		return nil, m.confirmErr
	}
	stored, ok := m.matches[matchID]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	p, ok := stored.Participation(handle)
	if !ok {
		return nil, domain.ErrNotParticipant
	}
	if !p.Pending {
		return nil, domain.ErrAlreadyConfirmed
	}

	now := time.Now().UTC()
	p.Pending = false
	p.ConfirmedAt = &now
	m.flips[matchID]++

	out := cloneMatch(*stored)
	return &domain.ConfirmOutcome{FullyConfirmed: !stored.Pending(), Match: &out}, nil
}

func (m *ThreadSafeMockRepository) ListMatches(ctx context.Context, filter domain.MatchFilter) ([]domain.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listErr != nil {
		return nil, m.listErr
	}

	var out []domain.Match
	for _, stored := range m.matches {
		if filter.Pending != nil && stored.Pending() != *filter.Pending {
			continue
		}
		if filter.MinID > 0 && stored.ID < filter.MinID {
			continue
		}
		if filter.MaxID > 0 && stored.ID > filter.MaxID {
			continue
		}
		out = append(out, cloneMatch(*stored))
	}

	sort.Slice(out, func(i, j int) bool {
		if filter.Order == domain.SortDescending {
			return out[j].Before(&out[i])
		}
		return out[i].Before(&out[j])
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *ThreadSafeMockRepository) ListPendingMatchesForPlayer(ctx context.Context, handle string) ([]domain.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listErr != nil {
		return nil, m.listErr
	}

	var out []domain.Match
	for _, stored := range m.matches {
		if p, ok := stored.Participation(handle); ok && p.Pending {
			out = append(out, cloneMatch(*stored))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(&out[j]) })
	return out, nil
}

func (m *ThreadSafeMockRepository) ListParticipationsByPlayer(ctx context.Context, handle string) ([]domain.Participation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Participation
	for _, stored := range m.matches {
		if p, ok := stored.Participation(handle); ok {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })
	return out, nil
}

func (m *ThreadSafeMockRepository) flipCount(matchID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flips[matchID]
}

func cloneMatch(src domain.Match) domain.Match {
	dst := src
	dst.Participations = append([]domain.Participation(nil), src.Participations...)
	return dst
}
