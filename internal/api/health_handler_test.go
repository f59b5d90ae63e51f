package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixedHealthHandler(started, now time.Time) *HealthHandler {
	return &HealthHandler{started: started, now: func() time.Time { return now }}
}

func TestHealthHandler_Root(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h := newFixedHealthHandler(now, now)

	rr := httptest.NewRecorder()
	h.Root(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp RootResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, BannerMessage, resp.Message)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "2025-03-01T12:00:00Z", resp.Timestamp)
}

func TestHealthHandler_Health(t *testing.T) {
	t.Parallel()

	started := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h := newFixedHealthHandler(started, started.Add(90*time.Second))

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.InDelta(t, 90.0, resp.UptimeSeconds, 0.001)
	assert.Equal(t, "2025-03-01T12:01:30Z", resp.Timestamp)
}

func TestHealthHandler_NotFound(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler()

	rr := httptest.NewRecorder()
	h.NotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	var resp NotFoundResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Route not found", resp.Error)
	assert.Equal(t, "/nope", resp.Path)
}
