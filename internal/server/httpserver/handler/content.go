package handler

import (
	"net/http"

	"github.com/yndnr/randapi-go/internal/core/content"
)

// handleUser handles GET /api/user.
func (h *Handler) handleUser(w http.ResponseWriter, r *http.Request) {
	h.served("user")
	h.writeJSON(w, http.StatusOK, content.NewUser(h.source))
}

// handleQuote handles GET /api/quote.
func (h *Handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	h.served("quote")
	h.writeJSON(w, http.StatusOK, QuoteResponse{Quote: content.Quote(h.source)})
}

// handleJoke handles GET /api/joke.
func (h *Handler) handleJoke(w http.ResponseWriter, r *http.Request) {
	h.served("joke")
	h.writeJSON(w, http.StatusOK, JokeResponse{Joke: content.Joke(h.source)})
}

func (h *Handler) served(kind string) {
	if h.metrics != nil {
		h.metrics.IncContentServed(kind)
	}
}
