package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/ScoreBot_Go/internal/domain"
	"github.com/osse101/ScoreBot_Go/internal/logger"
	"github.com/osse101/ScoreBot_Go/internal/match"
)

// ReportMatchRequest reports one match per score between two teams
type ReportMatchRequest struct {
	Reporter        string         `json:"reporter" validate:"required,handle"`
	Team1           []string       `json:"team1" validate:"required,min=1,max=16,dive,handle"`
	Team2           []string       `json:"team2" validate:"required,min=1,max=16,dive,handle"`
	Scores          []domain.Score `json:"scores" validate:"required,min=1,max=20,dive"`
	ConfirmReporter bool           `json:"confirm_reporter"`
}

// ReportMatchResponse lists the created matches and, when requested, the
// reporter's own confirmations of them
type ReportMatchResponse struct {
	MatchIDs      []int64                `json:"match_ids"`
	Confirmations []domain.ConfirmResult `json:"confirmations,omitempty"`
}

// ConfirmRequest names the confirming player
type ConfirmRequest struct {
	Player string `json:"player" validate:"required,handle"`
}

// ConfirmRangeRequest confirms the player's pending matches with ids in [from, to]
type ConfirmRangeRequest struct {
	Player string `json:"player" validate:"required,handle"`
	From   int64  `json:"from" validate:"min=1"`
	To     int64  `json:"to" validate:"min=1"`
}

// ConfirmBatchResponse is returned by batch confirmations
type ConfirmBatchResponse struct {
	Results   []domain.ConfirmResult `json:"results"`
	Confirmed []int64                `json:"confirmed"`
}

// MatchListResponse wraps a list of matches
type MatchListResponse struct {
	Matches []domain.Match `json:"matches"`
}

// MatchHandler serves the match reporting and confirmation endpoints
type MatchHandler struct {
	service          match.Service
	unconfirmedLimit int
}

// NewMatchHandler creates a MatchHandler. unconfirmedLimit is the default page
// size of the unconfirmed listing.
func NewMatchHandler(service match.Service, unconfirmedLimit int) *MatchHandler {
	return &MatchHandler{service: service, unconfirmedLimit: unconfirmedLimit}
}

// HandleReport handles POST /matches
// @Summary Report matches
// @Description Records one match per score between two teams. Nothing is rated until every participant confirms.
// @Tags matches
// @Accept json
// @Produce json
// @Param request body ReportMatchRequest true "Teams and scores"
// @Success 201 {object} ReportMatchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches [post]
// @Security ApiKeyAuth
func (h *MatchHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	var req ReportMatchRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionReportMatch); err != nil {
		return
	}

	if dup, ok := domain.FirstDuplicate(req.Team1, req.Team2); ok {
		respondServiceError(w, r, ActionReportMatch, fmt.Errorf("%w: %s", domain.ErrDuplicatePlayer, dup))
		return
	}

	ids, err := h.service.ReportGames(r.Context(), req.Reporter, req.Team1, req.Team2, req.Scores)
	if err != nil {
		respondServiceError(w, r, ActionReportMatch, err)
		return
	}

	resp := ReportMatchResponse{MatchIDs: ids}
	if req.ConfirmReporter {
		for _, id := range ids {
			res, err := h.service.Confirm(r.Context(), req.Reporter, id)
			if err != nil {
				respondServiceError(w, r, ActionConfirm, err)
				return
			}
			resp.Confirmations = append(resp.Confirmations, res)
		}
	}

	logger.FromContext(r.Context()).Info(LogMsgMatchReported,
		"reporter", req.Reporter, "match_ids", ids, "auto_confirmed", req.ConfirmReporter)
	respondJSON(w, http.StatusCreated, resp)
}

// HandleUnconfirmed handles GET /matches/unconfirmed
// @Summary List unconfirmed matches
// @Description Lists matches that still wait for at least one confirmation, oldest first
// @Tags matches
// @Produce json
// @Param limit query int false "Maximum number of matches"
// @Success 200 {object} MatchListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/unconfirmed [get]
// @Security ApiKeyAuth
func (h *MatchHandler) HandleUnconfirmed(w http.ResponseWriter, r *http.Request) {
	limit, ok := getLimitParam(r, w, h.unconfirmedLimit)
	if !ok {
		return
	}

	matches, err := h.service.UnconfirmedMatches(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, ActionUnconfirmed, err)
		return
	}
	if matches == nil {
		matches = []domain.Match{}
	}
	respondJSON(w, http.StatusOK, MatchListResponse{Matches: matches})
}

// HandleGetMatch handles GET /matches/{id}
// @Summary Get match
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} domain.Match
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{id} [get]
// @Security ApiKeyAuth
func (h *MatchHandler) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := getMatchIDParam(r, w)
	if !ok {
		return
	}

	m, err := h.service.GetMatch(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ActionGetMatch, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

// HandleConfirm handles POST /matches/{id}/confirm. Skipped confirmations
// are reported through the result status, not the HTTP status.
// @Summary Confirm match
// @Description Confirms the player's participation. The match is rated once every participant has confirmed.
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param request body ConfirmRequest true "Confirming player"
// @Success 200 {object} domain.ConfirmResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/{id}/confirm [post]
// @Security ApiKeyAuth
func (h *MatchHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	id, ok := getMatchIDParam(r, w)
	if !ok {
		return
	}
	var req ConfirmRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionConfirm); err != nil {
		return
	}

	res, err := h.service.Confirm(r.Context(), req.Player, id)
	if err != nil {
		respondServiceError(w, r, ActionConfirm, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgConfirmHandled,
		"player", req.Player, "match_id", id, "status", res.Status)
	respondJSON(w, http.StatusOK, res)
}

// HandleConfirmAll handles POST /matches/confirm-all
// @Summary Confirm all pending matches
// @Tags matches
// @Accept json
// @Produce json
// @Param request body ConfirmRequest true "Confirming player"
// @Success 200 {object} ConfirmBatchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/confirm-all [post]
// @Security ApiKeyAuth
func (h *MatchHandler) HandleConfirmAll(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionConfirmAll); err != nil {
		return
	}

	results, err := h.service.ConfirmAll(r.Context(), req.Player)
	if err != nil {
		respondServiceError(w, r, ActionConfirmAll, err)
		return
	}
	respondJSON(w, http.StatusOK, newConfirmBatchResponse(results))
}

// HandleConfirmRange handles POST /matches/confirm-range
// @Summary Confirm a range of matches
// @Description Confirms the player's pending matches with ids in [from, to]
// @Tags matches
// @Accept json
// @Produce json
// @Param request body ConfirmRangeRequest true "Player and inclusive id range"
// @Success 200 {object} ConfirmBatchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/confirm-range [post]
// @Security ApiKeyAuth
func (h *MatchHandler) HandleConfirmRange(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRangeRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionConfirmRange); err != nil {
		return
	}

	results, err := h.service.ConfirmRange(r.Context(), req.Player, req.From, req.To)
	if err != nil {
		respondServiceError(w, r, ActionConfirmRange, err)
		return
	}
	respondJSON(w, http.StatusOK, newConfirmBatchResponse(results))
}

func newConfirmBatchResponse(results []domain.ConfirmResult) ConfirmBatchResponse {
	resp := ConfirmBatchResponse{
		Results:   results,
		Confirmed: []int64{},
	}
	if resp.Results == nil {
		resp.Results = []domain.ConfirmResult{}
	}
	for _, res := range results {
		if res.Confirmed() {
			resp.Confirmed = append(resp.Confirmed, res.MatchID)
		}
	}
	return resp
}
