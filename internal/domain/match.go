package domain

import "time"

// Participation is one player's role in one match
type Participation struct {
	MatchID     int64      `json:"match_id"`
	Handle      string     `json:"player_handle"`
	Won         bool       `json:"won"`
	Pending     bool       `json:"pending"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}

// Match represents one reported game result
type Match struct {
	ID             int64           `json:"id"`
	WinnersScore   int             `json:"winners_score"`
	LosersScore    int             `json:"losers_score"`
	ReportedBy     string          `json:"reported_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	Participations []Participation `json:"participations"`
}

// Pending reports whether any participant still has to confirm.
// A match without participations is not pending.
func (m *Match) Pending() bool {
	for _, p := range m.Participations {
		if p.Pending {
			return true
		}
	}
	return false
}

// Winners returns the winning participations in stored order
func (m *Match) Winners() []Participation {
	return m.side(true)
}

// Losers returns the losing participations in stored order
func (m *Match) Losers() []Participation {
	return m.side(false)
}

func (m *Match) side(won bool) []Participation {
	var out []Participation
	for _, p := range m.Participations {
		if p.Won == won {
			out = append(out, p)
		}
	}
	return out
}

// Participation returns the participation of handle, if any
func (m *Match) Participation(handle string) (*Participation, bool) {
	for i := range m.Participations {
		if m.Participations[i].Handle == handle {
			return &m.Participations[i], true
		}
	}
	return nil, false
}

// PendingHandles lists the players who have not confirmed yet
func (m *Match) PendingHandles() []string {
	var out []string
	for _, p := range m.Participations {
		if p.Pending {
			out = append(out, p.Handle)
		}
	}
	return out
}

// Before orders matches by creation time, breaking ties by id.
// This is the replay order of the ledger.
func (m *Match) Before(other *Match) bool {
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return m.CreatedAt.Before(other.CreatedAt)
	}
	return m.ID < other.ID
}

// Score is one reported game score, team1 against team2
type Score struct {
	Team1 int `json:"team1" validate:"min=0"`
	Team2 int `json:"team2" validate:"min=0"`
}

// SortOrder controls match listing order by creation time
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// MatchFilter narrows match listings
type MatchFilter struct {
	Pending *bool // nil means both
	MinID   int64 // inclusive, 0 means unbounded
	MaxID   int64 // inclusive, 0 means unbounded
	Order   SortOrder
	Limit   int // 0 means unlimited
}

// ConfirmOutcome is what the store reports after flipping a participation
type ConfirmOutcome struct {
	// FullyConfirmed is true only for the flip that left the match with no pending participations
	FullyConfirmed bool
	Match          *Match
}

// FirstDuplicate returns the first handle that appears more than once
// across the given teams
func FirstDuplicate(teams ...[]string) (string, bool) {
	seen := make(map[string]struct{})
	for _, team := range teams {
		for _, h := range team {
			if _, ok := seen[h]; ok {
				return h, true
			}
			seen[h] = struct{}{}
		}
	}
	return "", false
}
