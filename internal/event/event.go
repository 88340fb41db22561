package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Match lifecycle event types
const (
	MatchReported  Type = "match.reported"
	MatchConfirmed Type = "match.confirmed"
	LedgerRebuilt  Type = "ledger.rebuilt"
)

// MatchReportedPayloadV1 is the typed payload for match reported events
type MatchReportedPayloadV1 struct {
	MatchID      int64    `json:"match_id"`
	ReportedBy   string   `json:"reported_by,omitempty"`
	Winners      []string `json:"winners"`
	Losers       []string `json:"losers"`
	WinnersScore int      `json:"winners_score"`
	LosersScore  int      `json:"losers_score"`
	Timestamp    int64    `json:"timestamp"`
}

// MatchConfirmedPayloadV1 is the typed payload for match confirmed events.
// Deltas is only set once the last participant confirmed.
type MatchConfirmedPayloadV1 struct {
	MatchID        int64          `json:"match_id"`
	PlayerHandle   string         `json:"player_handle"`
	FullyConfirmed bool           `json:"fully_confirmed"`
	Deltas         map[string]int `json:"deltas,omitempty"`
	Timestamp      int64          `json:"timestamp"`
}

// LedgerRebuiltPayloadV1 is the typed payload for ledger rebuild events
type LedgerRebuiltPayloadV1 struct {
	Reason    string `json:"reason"`
	Matches   int    `json:"matches"`
	Players   int    `json:"players"`
	Timestamp int64  `json:"timestamp"`
}

// NewMatchReportedEvent creates a new match reported event
func NewMatchReportedEvent(matchID int64, reportedBy string, winners, losers []string, winnersScore, losersScore int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MatchReported,
		Payload: MatchReportedPayloadV1{
			MatchID:      matchID,
			ReportedBy:   reportedBy,
			Winners:      winners,
			Losers:       losers,
			WinnersScore: winnersScore,
			LosersScore:  losersScore,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"match_id": matchID,
		},
	}
}

// NewMatchConfirmedEvent creates a new match confirmed event
func NewMatchConfirmedEvent(matchID int64, handle string, fullyConfirmed bool, deltas map[string]int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MatchConfirmed,
		Payload: MatchConfirmedPayloadV1{
			MatchID:        matchID,
			PlayerHandle:   handle,
			FullyConfirmed: fullyConfirmed,
			Deltas:         deltas,
			Timestamp:      time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"match_id": matchID,
		},
	}
}

// NewLedgerRebuiltEvent creates a new ledger rebuilt event
func NewLedgerRebuiltEvent(reason string, matches, players int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LedgerRebuilt,
		Payload: LedgerRebuiltPayloadV1{
			Reason:    reason,
			Matches:   matches,
			Players:   players,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
