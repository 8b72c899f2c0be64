// Package domain defines the core domain models for the Random Data API.
//
// Domain models are plain values without any IO dependencies or
// framework coupling. This package contains:
//
//   - AccessToken: per-client access token record and its usage counter
//   - Errors: domain error codes and helpers
//
// Access tokens are issued once, never expire and are never revoked.
// The only field that changes after issuance is the call count.
package domain
