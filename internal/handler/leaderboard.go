package handler

import (
	"net/http"

	"github.com/osse101/ScoreBot_Go/internal/domain"
	"github.com/osse101/ScoreBot_Go/internal/match"
)

// LeaderboardResponse lists rated players, highest rating first
type LeaderboardResponse struct {
	Players []domain.Standing `json:"players"`
}

// ParticipationListResponse wraps a player's match history
type ParticipationListResponse struct {
	Participations []domain.Participation `json:"participations"`
}

// HandleLeaderboard handles GET /leaderboard
// @Summary Get leaderboard
// @Tags players
// @Produce json
// @Success 200 {object} LeaderboardResponse
// @Router /leaderboard [get]
// @Security ApiKeyAuth
func HandleLeaderboard(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players := svc.Leaderboard()
		if players == nil {
			players = []domain.Standing{}
		}
		respondJSON(w, http.StatusOK, LeaderboardResponse{Players: players})
	}
}

// HandleGetPlayer handles GET /players/{handle}. Unknown players get the
// default standing.
// @Summary Get player standing
// @Tags players
// @Produce json
// @Param handle path string true "Player handle"
// @Success 200 {object} domain.Standing
// @Failure 400 {object} ErrorResponse
// @Router /players/{handle} [get]
// @Security ApiKeyAuth
func HandleGetPlayer(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handle, ok := getHandleParam(r, w)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, svc.Standing(handle))
	}
}

// HandlePlayerMatches handles GET /players/{handle}/matches
// @Summary Get player match history
// @Tags players
// @Produce json
// @Param handle path string true "Player handle"
// @Success 200 {object} ParticipationListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /players/{handle}/matches [get]
// @Security ApiKeyAuth
func HandlePlayerMatches(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handle, ok := getHandleParam(r, w)
		if !ok {
			return
		}
		ps, err := svc.PlayerHistory(r.Context(), handle)
		if err != nil {
			respondServiceError(w, r, ActionHistory, err)
			return
		}
		if ps == nil {
			ps = []domain.Participation{}
		}
		respondJSON(w, http.StatusOK, ParticipationListResponse{Participations: ps})
	}
}
