// Package httpserver provides the HTTP server for the Random Data API.
//
// This package wires handlers and middleware using stdlib net/http:
//
//   - Public endpoints: /, /register
//   - Token-gated endpoints: /api/user, /api/quote, /api/joke, /api/stats
//   - Probe endpoints: /health, /ready, /metrics
//
// Middleware chain: RequestID, Trace, Metrics, Audit, Recover, CORS,
// and APIKey on gated routes. APIKey counts each authorized request
// once against its token before the handler runs.
package httpserver
