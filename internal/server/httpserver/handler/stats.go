package handler

import (
	"net/http"

	"github.com/yndnr/randapi-go/internal/core/domain"
)

// handleStats handles GET /api/stats.
//
// The gate has already counted this request, so the reported total
// includes it.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.registry.Stats(r.Context(), r.Header.Get(APIKeyHeader))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, StatsResponse{
		TotalCalls: stats.CallCount,
		CreatedAt:  formatCreatedAt(stats.CreatedAt),
		Status:     domain.StatusActive,
	})
}
