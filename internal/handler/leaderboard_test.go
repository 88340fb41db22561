package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ScoreBot_Go/internal/domain"
	"github.com/osse101/ScoreBot_Go/internal/match"
)

func newPlayerRouter(svc *MockMatchService) http.Handler {
	r := chi.NewRouter()
	r.Get("/leaderboard", HandleLeaderboard(svc))
	r.Get("/players/{handle}", HandleGetPlayer(svc))
	r.Get("/players/{handle}/matches", HandlePlayerMatches(svc))
	r.Post("/admin/ledger/rebuild", HandleRebuildLedger(svc))
	r.Get("/admin/ledger/audit", HandleAuditLedger(svc))
	return r
}

func TestHandleLeaderboard(t *testing.T) {
	mockSvc := &MockMatchService{}
	mockSvc.On("Leaderboard").Return([]domain.Standing{
		{Handle: "alice", Rating: 1516, Wins: 1, Streak: 1},
		{Handle: "bob", Rating: 1484, Losses: 1},
	})

	w := doJSON(t, newPlayerRouter(mockSvc), http.MethodGet, "/leaderboard", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp LeaderboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Players, 2)
	assert.Equal(t, "alice", resp.Players[0].Handle)
	assert.Equal(t, 1516.0, resp.Players[0].Rating)
}

func TestHandleLeaderboard_Empty(t *testing.T) {
	mockSvc := &MockMatchService{}
	mockSvc.On("Leaderboard").Return(nil)

	w := doJSON(t, newPlayerRouter(mockSvc), http.MethodGet, "/leaderboard", nil)

	assert.JSONEq(t, `{"players":[]}`, w.Body.String())
}

func TestHandleGetPlayer(t *testing.T) {
	mockSvc := &MockMatchService{}
	mockSvc.On("Standing", "U123").Return(domain.Standing{Handle: "U123", Rating: 1500})

	w := doJSON(t, newPlayerRouter(mockSvc), http.MethodGet, "/players/U123", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rating":1500`)
}

func TestHandleGetPlayer_InvalidHandle(t *testing.T) {
	mockSvc := &MockMatchService{}

	w := doJSON(t, newPlayerRouter(mockSvc), http.MethodGet, "/players/"+strings.Repeat("x", MaxHandleLength+1), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgInvalidHandle)
	mockSvc.AssertNotCalled(t, "Standing", mock.Anything)
}

func TestHandlePlayerMatches(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockMatchService{}
		mockSvc.On("PlayerHistory", mock.Anything, "alice").Return([]domain.Participation{
			{MatchID: 1, Handle: "alice", Won: true},
		}, nil)

		w := doJSON(t, newPlayerRouter(mockSvc), http.MethodGet, "/players/alice/matches", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"match_id":1`)
	})

	t.Run("Store failure", func(t *testing.T) {
		mockSvc := &MockMatchService{}
		mockSvc.On("PlayerHistory", mock.Anything, "alice").Return(nil, domain.ErrDatabaseError)

		w := doJSON(t, newPlayerRouter(mockSvc), http.MethodGet, "/players/alice/matches", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), domain.ErrMsgDatabaseError)
	})
}

func TestHandleLedgerAdmin(t *testing.T) {
	t.Run("Rebuild", func(t *testing.T) {
		mockSvc := &MockMatchService{}
		mockSvc.On("Rebuild", mock.Anything, match.RebuildReasonManual).Return(nil)

		w := doJSON(t, newPlayerRouter(mockSvc), http.MethodPost, "/admin/ledger/rebuild", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgLedgerRebuilt)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Rebuild failure", func(t *testing.T) {
		mockSvc := &MockMatchService{}
		mockSvc.On("Rebuild", mock.Anything, match.RebuildReasonManual).Return(errors.New("boom"))

		w := doJSON(t, newPlayerRouter(mockSvc), http.MethodPost, "/admin/ledger/rebuild", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Audit", func(t *testing.T) {
		mockSvc := &MockMatchService{}
		mockSvc.On("Audit", mock.Anything).Return(&match.AuditReport{Consistent: true, Matches: 4, Players: 3}, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/ledger/audit", nil)
		w := httptest.NewRecorder()
		newPlayerRouter(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"consistent":true,"matches":4,"players":3}`, w.Body.String())
	})
}
