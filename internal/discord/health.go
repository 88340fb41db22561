package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string     `json:"status"`
	Uptime           string     `json:"uptime"`
	Connected        bool       `json:"connected"`
	CommandsReceived int64      `json:"commands_received"`
	LastCommandTime  *time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool       `json:"api_reachable"`
}

// Health reports the bot's connection state and whether the API answers
func (b *Bot) Health(ctx context.Context) HealthStatus {
	connected := b.Session != nil && b.Session.DataReady

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	apiReachable := b.Client != nil && b.Client.Health(ctx) == nil

	status := "healthy"
	if !connected || !apiReachable {
		status = "degraded"
	}

	health := HealthStatus{
		Status:           status,
		Uptime:           time.Since(b.startedAt).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: b.commandsHandled.Load(),
		APIReachable:     apiReachable,
	}
	if last := b.lastCommandAt.Load(); last != 0 {
		t := time.Unix(0, last)
		health.LastCommandTime = &t
	}
	return health
}

// HandleHealth returns the bot's health status
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	health := h.bot.Health(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if health.Status != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(health)
}
