package handler

import (
	"net/http"
	"time"

	"github.com/yndnr/randapi-go/internal/infra/buildinfo"
)

var homeEndpoints = []string{"/api/user", "/api/quote", "/api/joke", "/api/stats"}

// handleHome handles GET /.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HomeResponse{
		Name:         "Random Data API",
		Version:      APIVersion,
		Endpoints:    homeEndpoints,
		Registration: "POST to /register to get your API key",
	})
}

// handleHealth handles GET /health.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	n := h.registry.Count()
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Time:    time.Now().UTC().Format(time.RFC3339),
		Version: buildinfo.Get().Version,
		Tokens:  &n,
	})
}

// handleReady handles GET /ready.
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ready",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
