package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yndnr/randapi-go/internal/core/content"
	"github.com/yndnr/randapi-go/internal/core/domain"
	"github.com/yndnr/randapi-go/internal/core/service"
	"github.com/yndnr/randapi-go/internal/telemetry/logger"
	"github.com/yndnr/randapi-go/internal/telemetry/metric"
)

// APIKeyHeader carries the access token on gated requests.
const APIKeyHeader = "X-API-Key"

// Handler serves all application routes.
type Handler struct {
	registry *service.Registry
	source   content.Source
	logger   logger.Logger
	metrics  *metric.Registry
	mux      *http.ServeMux
}

// New creates a new Handler. metrics may be nil.
func New(registry *service.Registry, source content.Source, log logger.Logger, metrics *metric.Registry) *Handler {
	if log == nil {
		log = logger.Default()
	}

	h := &Handler{
		registry: registry,
		source:   source,
		logger:   log,
		metrics:  metrics,
		mux:      http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	// Public endpoints
	h.mux.HandleFunc("GET /{$}", h.handleHome)
	h.mux.HandleFunc("POST /register", h.handleRegister)
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)

	// Token-gated endpoints
	h.mux.HandleFunc("GET /api/user", h.handleUser)
	h.mux.HandleFunc("GET /api/quote", h.handleQuote)
	h.mux.HandleFunc("GET /api/joke", h.handleJoke)
	h.mux.HandleFunc("GET /api/stats", h.handleStats)

	h.mux.HandleFunc("/", h.handleNotFound)
}

// writeJSON writes a JSON response.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// WriteError writes an error response.
func WriteError(w http.ResponseWriter, status int, code, errText, message string) {
	w.Header().Set("Content-Type", "application/json")
	if code != "" {
		w.Header().Set("X-Error-Code", code)
	}
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   errText,
		Message: message,
	})
}

// WriteUnauthorized writes the fixed 401 response for a missing or
// invalid access token.
func WriteUnauthorized(w http.ResponseWriter) {
	WriteError(w, http.StatusUnauthorized, domain.ErrInvalidToken.Code,
		"Invalid API key", "Please include a valid API key in the X-API-Key header")
}

// WriteInternalError writes a generic 500 response.
func WriteInternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, domain.ErrInternalServer.Code,
		"Internal server error", "Something went wrong, please try again later")
}

// handleServiceError converts service errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch errorCodeToHTTPStatus(domain.GetErrorCode(err)) {
	case http.StatusUnauthorized:
		WriteUnauthorized(w)
	default:
		logger.L(r.Context()).Error("internal error", "error", err, "path", r.URL.Path)
		WriteInternalError(w)
	}
}

// errorCodeToHTTPStatus maps error codes to HTTP status codes. Only 401 is
// surfaced to clients; everything else is reported as a 500.
func errorCodeToHTTPStatus(code string) int {
	if domain.StatusOf(code) == http.StatusUnauthorized {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// handleNotFound handles any path without a route.
func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, "", "Not found",
		"Cannot "+r.Method+" "+r.URL.Path)
}
