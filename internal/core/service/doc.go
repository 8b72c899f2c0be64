// Package service provides domain services for the Random Data API.
//
// Domain services contain the business logic and orchestrate operations
// on domain models. They define interfaces for storage dependencies,
// allowing for dependency injection and testability.
//
// This package contains:
//
//   - Registry: access token issuance, validation and call accounting
//
// The Registry is constructed once at startup and passed to the HTTP
// layer. It holds no global state; all shared state lives in the
// injected TokenRepository.
package service
