package metrics

import (
	"context"

	"github.com/osse101/ScoreBot_Go/internal/event"
	"github.com/osse101/ScoreBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to the match lifecycle events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{event.MatchReported, event.MatchConfirmed, event.LedgerRebuilt} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.MatchReported:
		MatchesReported.Inc()

	case event.MatchConfirmed:
		payload, err := event.DecodePayload[event.MatchConfirmedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		if payload.FullyConfirmed {
			MatchesFullyConfirmed.Inc()
		}

	case event.LedgerRebuilt:
		payload, err := event.DecodePayload[event.LedgerRebuiltPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		LedgerRebuilds.WithLabelValues(payload.Reason).Inc()
		LedgerPlayers.Set(float64(payload.Players))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
