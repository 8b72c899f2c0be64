// Package handler provides HTTP request handlers for the Random Data API.
//
// This package contains handlers for all HTTP endpoints:
//
//   - register.go: access token issuance
//   - content.go: random user, quote and joke payloads
//   - stats.go: per-token usage
//   - health.go: home document, health and readiness checks
//
// Responses are bare JSON documents without an envelope. Handler performs
// no key checks of its own: a Handler from New must be mounted behind
// httpserver.APIKey for the /api/ routes, as httpserver.NewRouter does.
package handler
