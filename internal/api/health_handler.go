package api

import (
	"net/http"
	"time"

	"github.com/phrazzld/quizgen-api/internal/api/shared"
)

// BannerMessage is reported by the root endpoint.
const BannerMessage = "Quiz generation API is running"

// HealthHandler serves the banner, health probe and unknown-route responses.
type HealthHandler struct {
	started time.Time
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler whose uptime counts from now.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{started: time.Now(), now: time.Now}
}

// Root handles GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{
		Message:   BannerMessage,
		Status:    "success",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:        "healthy",
		UptimeSeconds: now.Sub(h.started).Seconds(),
		Timestamp:     now.UTC().Format(time.RFC3339),
	})
}

// NotFound handles any route without a handler.
func (h *HealthHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusNotFound, NotFoundResponse{
		Error: "Route not found",
		Path:  r.URL.Path,
	})
}
