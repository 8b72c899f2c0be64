package service

import (
	"context"
	"errors"
	"time"

	"github.com/yndnr/randapi-go/internal/core/domain"
	"github.com/yndnr/randapi-go/pkg/token"
)

// TokenRepository defines the storage interface for access tokens.
// Implementations must be safe for concurrent use.
type TokenRepository interface {
	// Get retrieves a snapshot of an access token by token hash.
	Get(ctx context.Context, tokenHash string) (*domain.AccessToken, error)

	// Create stores a new access token. Returns domain.ErrTokenConflict
	// if the hash is already present; the existing record is kept.
	Create(ctx context.Context, tok *domain.AccessToken) error

	// IncrCalls atomically increments the call count and returns the new value.
	IncrCalls(ctx context.Context, tokenHash string) (int64, error)

	// Count returns the number of stored access tokens.
	Count() int
}

// RegistryConfig holds configuration for Registry.
type RegistryConfig struct {
	// MaxIssueAttempts bounds retries when a freshly generated token
	// collides with an existing one (default: 3).
	MaxIssueAttempts int
}

// DefaultRegistryConfig returns default configuration.
func DefaultRegistryConfig() *RegistryConfig {
	return &RegistryConfig{
		MaxIssueAttempts: 3,
	}
}

// Registry issues access tokens and tracks per-token usage.
type Registry struct {
	repo        TokenRepository
	maxAttempts int

	// newToken is a hook for testing.
	newToken func() (*domain.AccessToken, string, error)
}

// NewRegistry creates a new Registry.
func NewRegistry(repo TokenRepository, config *RegistryConfig) *Registry {
	if config == nil {
		config = DefaultRegistryConfig()
	}
	if config.MaxIssueAttempts <= 0 {
		config.MaxIssueAttempts = 1
	}

	return &Registry{
		repo:        repo,
		maxAttempts: config.MaxIssueAttempts,
		newToken:    domain.NewAccessToken,
	}
}

// IssueResult contains a newly issued access token.
type IssueResult struct {
	// Token is the plaintext access token. It is returned only here.
	Token string

	// Record is the stored record (CallCount = 0).
	Record *domain.AccessToken
}

// Issue generates, stores and returns a new access token.
func (r *Registry) Issue(ctx context.Context) (*IssueResult, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		rec, plain, err := r.newToken()
		if err != nil {
			return nil, domain.ErrInternalServer.WithCause(err)
		}

		err = r.repo.Create(ctx, rec)
		if err == nil {
			return &IssueResult{
				Token:  plain,
				Record: rec.Clone(),
			}, nil
		}
		if !errors.Is(err, domain.ErrTokenConflict) {
			return nil, domain.ErrInternalServer.WithCause(err)
		}
		lastErr = err
	}

	return nil, domain.ErrInternalServer.WithCause(lastErr)
}

// Validate checks an access token and returns a snapshot of its record.
// Empty, malformed and unknown tokens all fail with domain.ErrInvalidToken.
func (r *Registry) Validate(ctx context.Context, plain string) (*domain.AccessToken, error) {
	if plain == "" {
		return nil, domain.ErrInvalidToken.WithDetails("api key not provided")
	}
	if !token.IsWellFormed(plain) {
		return nil, domain.ErrInvalidToken.WithDetails("malformed api key")
	}

	rec, err := r.repo.Get(ctx, token.Hash(plain))
	if err != nil {
		return nil, lookupError(err)
	}
	return rec, nil
}

// lookupError reports an unknown token as ErrInvalidToken and any other
// store failure as ErrInternalServer.
func lookupError(err error) error {
	if errors.Is(err, domain.ErrTokenNotFound) {
		return domain.ErrInvalidToken.WithCause(err)
	}
	return domain.ErrInternalServer.WithCause(err)
}

// RecordCall increments the call count of a token by one and returns the new count.
func (r *Registry) RecordCall(ctx context.Context, plain string) (int64, error) {
	if plain == "" {
		return 0, domain.ErrInvalidToken.WithDetails("api key not provided")
	}

	n, err := r.repo.IncrCalls(ctx, token.Hash(plain))
	if err != nil {
		return 0, lookupError(err)
	}
	return n, nil
}

// Authorize validates a token and records one call against it.
// The returned snapshot already includes the recorded call.
func (r *Registry) Authorize(ctx context.Context, plain string) (*domain.AccessToken, error) {
	rec, err := r.Validate(ctx, plain)
	if err != nil {
		return nil, err
	}

	n, err := r.RecordCall(ctx, plain)
	if err != nil {
		return nil, err
	}
	rec.CallCount = n
	return rec, nil
}

// Stats contains the usage of a single access token.
type Stats struct {
	CallCount int64
	CreatedAt time.Time
}

// Stats returns the usage of a token. Fails like Validate.
func (r *Registry) Stats(ctx context.Context, plain string) (*Stats, error) {
	rec, err := r.Validate(ctx, plain)
	if err != nil {
		return nil, err
	}
	return &Stats{
		CallCount: rec.CallCount,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// Count returns the number of issued access tokens.
func (r *Registry) Count() int {
	return r.repo.Count()
}
