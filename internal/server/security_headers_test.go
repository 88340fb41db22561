package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()

	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil))

	for header, want := range map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
		"Referrer-Policy":         "no-referrer",
		"Cache-Control":           "no-store",
	} {
		assert.Equal(t, want, rec.Header().Get(header), header)
	}
}

func TestSecurityHeadersMiddleware_APIExplorer(t *testing.T) {
	rec := httptest.NewRecorder()

	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	assert.Equal(t, HeaderValueSwaggerUI, rec.Header().Get(HeaderContentSecurityPolicy))
	assert.Equal(t, "DENY", rec.Header().Get(HeaderFrameOptions))
}

func TestIsPublicPath(t *testing.T) {
	assert.True(t, isPublicPath("/healthz"))
	assert.True(t, isPublicPath("/metrics"))
	assert.True(t, isPublicPath("/swagger/doc.json"))
	assert.False(t, isPublicPath("/healthzz"))
	assert.False(t, isPublicPath("/versionless"))
	assert.False(t, isPublicPath("/api/v1/leaderboard"))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, http.StatusTooManyRequests, ErrMsgTooManyRequests)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Too Many Requests"}`, rec.Body.String())
}
