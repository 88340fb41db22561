package domain

// Standing is a player's ledger entry, derived from confirmed matches
type Standing struct {
	Handle string  `json:"handle"`
	Rating float64 `json:"rating"`
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Streak int     `json:"streak"`
}

// ConfirmStatus is the outcome of a single confirmation attempt
type ConfirmStatus string

const (
	ConfirmStatusNotFound         ConfirmStatus = "not_found"
	ConfirmStatusNotParticipant   ConfirmStatus = "not_participant"
	ConfirmStatusAlreadyConfirmed ConfirmStatus = "already_confirmed"
	ConfirmStatusConfirmed        ConfirmStatus = "confirmed"
)

// ConfirmResult is returned for every confirmation attempt.
// Deltas is set only when this confirmation completed the match.
type ConfirmResult struct {
	MatchID              int64          `json:"match_id"`
	Status               ConfirmStatus  `json:"status"`
	BecameFullyConfirmed bool           `json:"became_fully_confirmed"`
	Deltas               map[string]int `json:"deltas,omitempty"`
}

// Confirmed reports whether the attempt flipped the player's participation
func (r ConfirmResult) Confirmed() bool {
	return r.Status == ConfirmStatusConfirmed
}

// MatchIDs lists the match ids of results, in order
func MatchIDs(results []ConfirmResult) []int64 {
	ids := make([]int64, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.MatchID)
	}
	return ids
}
