package rating

import (
	"sort"
	"sync"

	"github.com/osse101/ScoreBot_Go/internal/domain"
)

// Ledger holds the current standing of every player seen in an applied match.
// It is derived state: replaying confirmed matches in creation order rebuilds it.
type Ledger struct {
	mu      sync.RWMutex
	entries map[string]*domain.Standing
	applied int
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{
		entries: make(map[string]*domain.Standing),
	}
}

// Get returns the standing of handle. Unseen handles get the default entry,
// which is not stored.
func (l *Ledger) Get(handle string) domain.Standing {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if e, ok := l.entries[handle]; ok {
		return *e
	}
	return defaultStanding(handle)
}

// Apply folds a confirmed match into the ledger and returns the rating delta
// of every participant. It does not check whether the match was applied
// before; callers must apply each match at most once.
func (l *Ledger) Apply(match *domain.Match) (map[string]int, error) {
	winners := match.Winners()
	losers := match.Losers()

	l.mu.Lock()
	defer l.mu.Unlock()

	winningDeltas, losingDeltas, err := RateTeam(l.ratingsLocked(winners), l.ratingsLocked(losers))
	if err != nil {
		return nil, err
	}

	deltas := make(map[string]int, len(winners)+len(losers))
	for i, p := range winners {
		e := l.entryLocked(p.Handle)
		e.Rating += float64(winningDeltas[i])
		e.Wins++
		e.Streak++
		deltas[p.Handle] += winningDeltas[i]
	}
	for i, p := range losers {
		e := l.entryLocked(p.Handle)
		e.Rating += float64(losingDeltas[i])
		e.Losses++
		e.Streak = 0
		deltas[p.Handle] += losingDeltas[i]
	}
	l.applied++

	return deltas, nil
}

// Standings returns every materialized entry, highest rating first
func (l *Ledger) Standings() []domain.Standing {
	l.mu.RLock()
	out := make([]domain.Standing, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, *e)
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Handle < out[j].Handle
	})
	return out
}

// Snapshot copies the ledger into a plain map, for comparisons
func (l *Ledger) Snapshot() map[string]domain.Standing {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]domain.Standing, len(l.entries))
	for h, e := range l.entries {
		out[h] = *e
	}
	return out
}

// Len returns the number of players with at least one applied match
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Applied returns how many matches were folded into the ledger
func (l *Ledger) Applied() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.applied
}

// Replay builds a fresh ledger from matches. Pending matches are skipped and
// the rest are applied in creation order regardless of input order.
// onApply, when non-nil, receives the deltas of each applied match.
func Replay(matches []domain.Match, onApply func(match *domain.Match, deltas map[string]int)) (*Ledger, error) {
	ordered := make([]*domain.Match, 0, len(matches))
	for i := range matches {
		if !matches[i].Pending() {
			ordered = append(ordered, &matches[i])
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Before(ordered[j])
	})

	ledger := NewLedger()
	for _, m := range ordered {
		deltas, err := ledger.Apply(m)
		if err != nil {
			return nil, err
		}
		if onApply != nil {
			onApply(m, deltas)
		}
	}
	return ledger, nil
}

func (l *Ledger) ratingsLocked(ps []domain.Participation) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		if e, ok := l.entries[p.Handle]; ok {
			out[i] = e.Rating
		} else {
			out[i] = DefaultRating
		}
	}
	return out
}

func (l *Ledger) entryLocked(handle string) *domain.Standing {
	e, ok := l.entries[handle]
	if !ok {
		s := defaultStanding(handle)
		e = &s
		l.entries[handle] = e
	}
	return e
}

func defaultStanding(handle string) domain.Standing {
	return domain.Standing{Handle: handle, Rating: DefaultRating}
}
