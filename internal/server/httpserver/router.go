package httpserver

import (
	"net/http"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/yndnr/randapi-go/internal/core/content"
	"github.com/yndnr/randapi-go/internal/core/service"
	"github.com/yndnr/randapi-go/internal/server/httpserver/handler"
	"github.com/yndnr/randapi-go/internal/telemetry/logger"
	"github.com/yndnr/randapi-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Registry issues and validates access tokens.
	Registry *service.Registry

	// Content is the random source for generated payloads.
	Content content.Source

	// Logger for request logging.
	Logger logger.Logger

	// Metrics records request metrics and serves /metrics (nil = disabled).
	Metrics *metric.Registry

	// Tracer starts a span per request (nil = no-op).
	Tracer trace.Tracer

	// CORSAllowedOrigins is the list of allowed CORS origins (empty = allow all).
	CORSAllowedOrigins []string

	// EnableAudit enables one access log line per request.
	EnableAudit bool
}

// DefaultRouterConfig returns default router configuration.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		EnableAudit: true,
	}
}

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}
	src := cfg.Content
	if src == nil {
		src = content.NewSource()
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}

	h := handler.New(cfg.Registry, src, log, cfg.Metrics)

	// Order: RequestID -> Trace -> Metrics -> Audit -> Recover -> CORS -> [APIKey] -> Handler
	common := []Middleware{RequestID(), Trace(tracer)}
	if cfg.Metrics != nil {
		common = append(common, Metrics(cfg.Metrics))
	}
	if cfg.EnableAudit {
		common = append(common, Audit(log))
	}
	common = append(common, Recover(log), CORS(cfg.CORSAllowedOrigins))

	publicHandler := Chain(h, common...)
	gatedHandler := Chain(h, append(common[:len(common):len(common)], APIKey(cfg.Registry, cfg.Metrics))...)

	mux := http.NewServeMux()

	// Probes skip tracing and access logs
	probeHandler := Chain(h, RequestID(), Recover(log))
	mux.Handle("GET /health", probeHandler)
	mux.Handle("GET /ready", probeHandler)

	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(cfg.Metrics.Handler(), Recover(log)))
	}

	// Public endpoints
	mux.Handle("GET /{$}", publicHandler)
	mux.Handle("POST /register", publicHandler)

	// Token-gated endpoints
	mux.Handle("GET /api/user", gatedHandler)
	mux.Handle("GET /api/quote", gatedHandler)
	mux.Handle("GET /api/joke", gatedHandler)
	mux.Handle("GET /api/stats", gatedHandler)

	// Everything else, including CORS preflight
	mux.Handle("/", publicHandler)

	return mux
}
