package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/ScoreBot_Go/internal/domain"
	"github.com/osse101/ScoreBot_Go/internal/logger"
)

// SuccessResponse carries a message for operations without a result body
type SuccessResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Leaderboards and histories are encoded on every chat command, so encode
// buffers are reused
var bufferPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

// respondJSON encodes payload fully before writing, so an encode failure
// still yields a clean 500
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps it to a user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf(LogMsgServiceError, action), "error", err)
	} else {
		log.Warn(fmt.Sprintf(LogMsgServiceError, action), "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors. The chat bot matches on
// some of these to phrase its replies.
const (
	ErrMsgGenericServerError     = "Something went wrong"
	ErrMsgInvalidTeamError       = "Each team needs at least one player"
	ErrMsgInvalidScoreError      = "Scores must be non-negative numbers"
	ErrMsgDuplicatePlayerError   = "A player can only appear once in a match"
	ErrMsgMatchNotFoundError     = "Match not found"
	ErrMsgNotParticipantError    = "You did not play in that match"
	ErrMsgAlreadyConfirmedError  = "You already confirmed that match"
	ErrMsgInvalidMatchRangeError = "The first match id must not be greater than the last"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
)

var serviceErrors = []struct {
	err    error
	status int
	msg    string
}{
	{domain.ErrInvalidTeam, http.StatusBadRequest, ErrMsgInvalidTeamError},
	{domain.ErrInvalidScore, http.StatusBadRequest, ErrMsgInvalidScoreError},
	{domain.ErrDuplicatePlayer, http.StatusBadRequest, ErrMsgDuplicatePlayerError},
	{domain.ErrInvalidMatchRange, http.StatusBadRequest, ErrMsgInvalidMatchRangeError},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
	{domain.ErrMatchNotFound, http.StatusNotFound, ErrMsgMatchNotFoundError},
	{domain.ErrNotParticipant, http.StatusForbidden, ErrMsgNotParticipantError},
	{domain.ErrAlreadyConfirmed, http.StatusConflict, ErrMsgAlreadyConfirmedError},
}

// mapServiceError maps domain errors to a status and a message safe to show.
// Store failures and anything unrecognised become a generic 500.
func mapServiceError(err error) (int, string) {
	for _, e := range serviceErrors {
		if errors.Is(err, e.err) {
			return e.status, e.msg
		}
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
