package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/ScoreBot_Go/internal/domain"
	"github.com/osse101/ScoreBot_Go/internal/handler"
	"github.com/osse101/ScoreBot_Go/internal/logger"
)

// API is the part of the ScoreBot API the chat bot uses
type API interface {
	ReportMatch(ctx context.Context, req handler.ReportMatchRequest) (*handler.ReportMatchResponse, error)
	Confirm(ctx context.Context, player string, matchID int64) (*domain.ConfirmResult, error)
	ConfirmAll(ctx context.Context, player string) (*handler.ConfirmBatchResponse, error)
	ConfirmRange(ctx context.Context, player string, from, to int64) (*handler.ConfirmBatchResponse, error)
	Leaderboard(ctx context.Context) ([]domain.Standing, error)
	Unconfirmed(ctx context.Context, limit int) ([]domain.Match, error)
	Player(ctx context.Context, handle string) (*domain.Standing, error)
	Health(ctx context.Context) error
}

// APIError is a non-2xx answer from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf(ErrMsgAPIStatus, e.StatusCode)
	}
	return fmt.Sprintf(ErrMsgAPIError, e.Message)
}

// APIClient handles communication with the ScoreBot API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string

	maxRetries int
	retryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: apiTimeout,
		},
		APIKey:     apiKey,
		maxRetries: apiMaxRetries,
		retryDelay: apiRetryDelay,
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx
// answers with exponential backoff
func (c *APIClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	log := logger.FromContext(ctx)

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgMarshalBody, err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := c.retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			log.Info(LogMsgRetryingRequest, "attempt", attempt, "path", path, "delay", delay)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf(ErrMsgCreateRequest, err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set(headerAPIKey, c.APIKey)
		}
		if id := logger.GetRequestID(ctx); id != "" {
			req.Header.Set("X-Request-ID", id)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			log.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		// Server error - retry
		_ = resp.Body.Close()
		lastErr = &APIError{StatusCode: resp.StatusCode}
		log.Warn(LogMsgServerErrorRetry, "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf(ErrMsgMaxRetries, lastErr)
}

// call performs the request and decodes a 2xx JSON body into out
func (c *APIClient) call(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp handler.ErrorResponse
		if data, readErr := io.ReadAll(resp.Body); readErr == nil && json.Unmarshal(data, &errResp) == nil {
			apiErr.Message = errResp.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf(ErrMsgDecodeResponse, err)
	}
	return nil
}

// ReportMatch reports one match per score
func (c *APIClient) ReportMatch(ctx context.Context, req handler.ReportMatchRequest) (*handler.ReportMatchResponse, error) {
	var out handler.ReportMatchResponse
	if err := c.call(ctx, http.MethodPost, "/api/v1/matches", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Confirm confirms one match for player
func (c *APIClient) Confirm(ctx context.Context, player string, matchID int64) (*domain.ConfirmResult, error) {
	var out domain.ConfirmResult
	path := "/api/v1/matches/" + strconv.FormatInt(matchID, 10) + "/confirm"
	if err := c.call(ctx, http.MethodPost, path, handler.ConfirmRequest{Player: player}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmAll confirms every pending match of player
func (c *APIClient) ConfirmAll(ctx context.Context, player string) (*handler.ConfirmBatchResponse, error) {
	var out handler.ConfirmBatchResponse
	if err := c.call(ctx, http.MethodPost, "/api/v1/matches/confirm-all", handler.ConfirmRequest{Player: player}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmRange confirms player's pending matches with ids in [from, to]
func (c *APIClient) ConfirmRange(ctx context.Context, player string, from, to int64) (*handler.ConfirmBatchResponse, error) {
	var out handler.ConfirmBatchResponse
	req := handler.ConfirmRangeRequest{Player: player, From: from, To: to}
	if err := c.call(ctx, http.MethodPost, "/api/v1/matches/confirm-range", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Leaderboard returns every rated player, best first
func (c *APIClient) Leaderboard(ctx context.Context) ([]domain.Standing, error) {
	var out handler.LeaderboardResponse
	if err := c.call(ctx, http.MethodGet, "/api/v1/leaderboard", nil, &out); err != nil {
		return nil, err
	}
	return out.Players, nil
}

// Unconfirmed returns up to limit pending matches, newest first
func (c *APIClient) Unconfirmed(ctx context.Context, limit int) ([]domain.Match, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	var out handler.MatchListResponse
	if err := c.call(ctx, http.MethodGet, "/api/v1/matches/unconfirmed?"+params.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Matches, nil
}

// Player returns the current standing of handle
func (c *APIClient) Player(ctx context.Context, handle string) (*domain.Standing, error) {
	var out domain.Standing
	if err := c.call(ctx, http.MethodGet, "/api/v1/players/"+url.PathEscape(handle), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health checks that the API answers its liveness probe
func (c *APIClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf(ErrMsgCreateRequest, err)
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode}
	}
	return nil
}

// isServerUnavailable reports whether err means the API could not be reached
func isServerUnavailable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	return !errors.Is(err, context.Canceled)
}
