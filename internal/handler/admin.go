package handler

import (
	"net/http"

	"github.com/osse101/ScoreBot_Go/internal/logger"
	"github.com/osse101/ScoreBot_Go/internal/match"
)

// AuditResponse reports the outcome of a ledger audit
type AuditResponse struct {
	Consistent bool   `json:"consistent"`
	Matches    int    `json:"matches"`
	Players    int    `json:"players"`
	InFlight   int    `json:"in_flight"`
	Diff       string `json:"diff,omitempty"`
}

// HandleRebuildLedger handles POST /admin/ledger/rebuild
// @Summary Rebuild ledger
// @Description Replays every confirmed match into a fresh ledger
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/ledger/rebuild [post]
// @Security ApiKeyAuth
func HandleRebuildLedger(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Info(LogMsgLedgerRebuildManual)
		if err := svc.Rebuild(r.Context(), match.RebuildReasonManual); err != nil {
			respondServiceError(w, r, ActionRebuild, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLedgerRebuilt})
	}
}

// HandleAuditLedger handles GET /admin/ledger/audit
// @Summary Audit ledger
// @Description Compares the live ledger with a replay of the confirmed history
// @Tags admin
// @Produce json
// @Success 200 {object} AuditResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/ledger/audit [get]
// @Security ApiKeyAuth
func HandleAuditLedger(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.Audit(r.Context())
		if err != nil {
			respondServiceError(w, r, ActionAudit, err)
			return
		}
		respondJSON(w, http.StatusOK, AuditResponse{
			Consistent: report.Consistent,
			Matches:    report.Matches,
			Players:    report.Players,
			InFlight:   report.InFlight,
			Diff:       report.Diff,
		})
	}
}
