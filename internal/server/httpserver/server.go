package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"
)

// DefaultReadHeaderTimeout bounds how long a client may take to send headers.
const DefaultReadHeaderTimeout = 10 * time.Second

// Server is an http.Server that is started on a caller-owned listener.
type Server struct {
	hs *http.Server
}

// Option configures a Server.
type Option func(*http.Server)

// WithReadHeaderTimeout overrides DefaultReadHeaderTimeout. Non-positive
// values are ignored.
func WithReadHeaderTimeout(d time.Duration) Option {
	return func(s *http.Server) {
		if d > 0 {
			s.ReadHeaderTimeout = d
		}
	}
}

// New returns a Server for h. addr is informational; Serve decides where
// the server actually listens.
func New(addr string, h http.Handler, opts ...Option) *Server {
	s := &Server{hs: &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
	}}
	for _, opt := range opts {
		opt(s.hs)
	}
	return s
}

// Addr returns the address given to New.
func (s *Server) Addr() string { return s.hs.Addr }

// Serve blocks until Shutdown, then returns http.ErrServerClosed.
func (s *Server) Serve(ln net.Listener) error { return s.hs.Serve(ln) }

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error { return s.hs.Shutdown(ctx) }
