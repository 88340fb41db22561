package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ScoreBot_Go/internal/domain"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{domain.ErrInvalidScore, http.StatusBadRequest, ErrMsgInvalidScoreError},
		{fmt.Errorf("report: %w", domain.ErrDuplicatePlayer), http.StatusBadRequest, ErrMsgDuplicatePlayerError},
		{domain.ErrMatchNotFound, http.StatusNotFound, ErrMsgMatchNotFoundError},
		{domain.ErrNotParticipant, http.StatusForbidden, ErrMsgNotParticipantError},
		{domain.ErrAlreadyConfirmed, http.StatusConflict, ErrMsgAlreadyConfirmedError},
		{domain.ErrDatabaseError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{nil, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		status, msg := mapServiceError(tt.err)
		assert.Equal(t, tt.wantStatus, status, "%v", tt.err)
		assert.Equal(t, tt.wantMsg, msg, "%v", tt.err)
	}
}

func TestRespondJSON_Unencodable(t *testing.T) {
	w := httptest.NewRecorder()

	respondJSON(w, http.StatusOK, map[string]interface{}{"ch": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}

func TestDecodeAndValidateRequest_UnknownField(t *testing.T) {
	body := strings.NewReader(`{"player":"alice","match":3}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/matches/confirm-all", body)
	w := httptest.NewRecorder()

	var dst ConfirmRequest
	err := DecodeAndValidateRequest(req, w, &dst, ActionConfirmAll)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
}
