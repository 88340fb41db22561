package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ScoreBot_Go/internal/logger"
)

// ValidationErrorResponse lists the failed fields of a request body
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON body into req and validates it.
// On error the response has been written and the handler should return.
//
//	var req ConfirmRequest
//	if err := DecodeAndValidateRequest(r, w, &req, ActionConfirm); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(fmt.Sprintf(LogMsgRequestDecoded, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// getLimitParam parses the optional "limit" query parameter. A missing value yields fallback.
func getLimitParam(r *http.Request, w http.ResponseWriter, fallback int) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return limit, true
}

// getMatchIDParam parses the {id} route parameter
func getMatchIDParam(r *http.Request, w http.ResponseWriter) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidMatchID)
		return 0, false
	}
	return id, true
}

// getHandleParam reads the {handle} route parameter
func getHandleParam(r *http.Request, w http.ResponseWriter) (string, bool) {
	handle := chi.URLParam(r, "handle")
	if err := GetValidator().ValidateHandle(handle); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidHandle)
		return "", false
	}
	return handle, true
}
