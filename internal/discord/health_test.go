package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotHealth(t *testing.T) {
	api := &MockAPIClient{}
	b, _ := newTestBot(t, api)

	health := b.Health(context.Background())
	assert.Equal(t, "degraded", health.Status)
	assert.False(t, health.Connected)
	assert.True(t, health.APIReachable)
	assert.Nil(t, health.LastCommandTime)

	require.NoError(t, b.Execute(context.Background(), Command{Kind: CommandLeaderboard, Author: "1"}))
	health = b.Health(context.Background())
	assert.Equal(t, int64(1), health.CommandsReceived)
	assert.NotNil(t, health.LastCommandTime)

	api.HealthFunc = func(context.Context) error { return errors.New("connection refused") }
	assert.False(t, b.Health(context.Background()).APIReachable)
}

func TestHTTPServer_HandleHealth(t *testing.T) {
	b, _ := newTestBot(t, &MockAPIClient{})
	srv := NewHTTPServer("0", b)

	rr := httptest.NewRecorder()
	srv.HandleHealth(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	var health HealthStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, "degraded", health.Status)
}

func TestHTTPServer_Announce(t *testing.T) {
	b, sender := newTestBot(t, &MockAPIClient{})
	srv := NewHTTPServer("0", b)

	tests := []struct {
		name   string
		method string
		body   string
		code   int
	}{
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed},
		{"empty message", http.MethodPost, `{"message":""}`, http.StatusBadRequest},
		{"bad json", http.MethodPost, `{`, http.StatusBadRequest},
		{"ok", http.MethodPost, `{"message":"Tournament starts at 6!"}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/admin/announce", strings.NewReader(tt.body))
			srv.server.Handler.ServeHTTP(rr, req)
			assert.Equal(t, tt.code, rr.Code)
		})
	}

	assert.Equal(t, []string{"Tournament starts at 6!"}, sender.Messages())

	sender.err = errors.New("discord down")
	rr := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/admin/announce", strings.NewReader(`{"message":"hi"}`)))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
