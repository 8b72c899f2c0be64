package handler

import (
	"net/http"

	"github.com/yndnr/randapi-go/internal/telemetry/logger"
)

const registerMessage = "Save this API key securely. You cannot retrieve it later."

// handleRegister handles POST /register. Any request body is ignored.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	res, err := h.registry.Issue(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.IncTokensIssued()
	}
	logger.L(r.Context()).Info("access token issued", "client_id", res.Record.ID)

	h.writeJSON(w, http.StatusOK, RegisterResponse{
		APIKey:  res.Token,
		Message: registerMessage,
		Endpoints: RegisterEndpoints{
			RandomUser:  "/api/user",
			RandomQuote: "/api/quote",
			RandomJoke:  "/api/joke",
			Stats:       "/api/stats",
		},
	})
}
