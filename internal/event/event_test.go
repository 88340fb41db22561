package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got Event

	bus.Subscribe(MatchReported, func(ctx context.Context, event Event) error {
		got = event
		return nil
	})

	evt := NewMatchReportedEvent(3, "alice", []string{"alice"}, []string{"bob"}, 11, 5)
	require.NoError(t, bus.Publish(context.Background(), evt))

	assert.Equal(t, MatchReported, got.Type)
	assert.Equal(t, EventSchemaVersion, got.Version)
	assert.Equal(t, int64(3), got.GetMetadataValue("match_id"))

	payload, err := DecodePayload[MatchReportedPayloadV1](got.Payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, payload.Losers)
	assert.Equal(t, 11, payload.WinnersScore)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(MatchConfirmed, handler)
	bus.Subscribe(MatchConfirmed, handler)

	err := bus.Publish(context.Background(), NewMatchConfirmedEvent(1, "bob", false, nil))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	assert.NoError(t, bus.Publish(context.Background(), NewLedgerRebuiltEvent("bootstrap", 0, 0)))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	called := false

	bus.Subscribe(MatchConfirmed, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(MatchConfirmed, func(ctx context.Context, event Event) error {
		called = true
		return nil
	})

	err := bus.Publish(context.Background(), NewMatchConfirmedEvent(1, "bob", true, map[string]int{"bob": 16}))

	assert.Error(t, err)
	assert.True(t, called, "a failing handler must not stop later handlers")
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"match_id": 9, "player_handle": "carol", "fully_confirmed": true}

	payload, err := DecodePayload[MatchConfirmedPayloadV1](raw)

	require.NoError(t, err)
	assert.Equal(t, int64(9), payload.MatchID)
	assert.Equal(t, "carol", payload.PlayerHandle)
	assert.True(t, payload.FullyConfirmed)
}

func TestDecodePayload_Pointer(t *testing.T) {
	payload, err := DecodePayload[LedgerRebuiltPayloadV1](&LedgerRebuiltPayloadV1{Reason: "audit", Matches: 4})

	require.NoError(t, err)
	assert.Equal(t, "audit", payload.Reason)
	assert.Equal(t, 4, payload.Matches)
}

func TestDecodePayload_Empty(t *testing.T) {
	_, err := DecodePayload[LedgerRebuiltPayloadV1](nil)

	assert.Error(t, err)
}
