// Package logger provides structured logging for the Random Data API.
//
// It wraps log/slog behind a small Logger interface:
//
//   - logger.go: handler construction, shared dynamic level, global default
//   - context.go: request ID, trace ID and client ID carried in the context
//   - redact.go: masking of access tokens and sensitive keys
//
// Access tokens are 32 lowercase hex characters. Every string attribute,
// error and message is scanned and embedded tokens are masked before the
// record reaches the handler.
package logger
