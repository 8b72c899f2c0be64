package memory

import (
	"context"
	"sync/atomic"

	"github.com/yndnr/randapi-go/internal/core/domain"
	"github.com/yndnr/randapi-go/pkg/cmap"
)

// record is the stored form of an access token.
// Everything except calls is immutable after insertion.
type record struct {
	token domain.AccessToken
	calls atomic.Int64
}

// snapshot returns a point-in-time copy of the record.
func (r *record) snapshot() *domain.AccessToken {
	snap := r.token
	snap.CallCount = r.calls.Load()
	return &snap
}

// TokenStore provides in-memory storage for access tokens.
type TokenStore struct {
	records *cmap.Map[string, *record]
}

// NewTokenStore creates a new token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{
		records: cmap.New[string, *record](0),
	}
}

// Get retrieves an access token by token hash.
func (s *TokenStore) Get(_ context.Context, tokenHash string) (*domain.AccessToken, error) {
	rec, ok := s.records.Load(tokenHash)
	if !ok {
		return nil, domain.ErrTokenNotFound
	}
	return rec.snapshot(), nil
}

// Create stores a new access token.
// The call count of the stored record starts from tok.CallCount.
func (s *TokenStore) Create(_ context.Context, tok *domain.AccessToken) error {
	rec := &record{token: *tok}
	rec.token.CallCount = 0
	rec.calls.Store(tok.CallCount)

	if _, loaded := s.records.LoadOrStore(tok.TokenHash, rec); loaded {
		return domain.ErrTokenConflict
	}
	return nil
}

// IncrCalls increments the call count of an access token by one
// and returns the new count.
func (s *TokenStore) IncrCalls(_ context.Context, tokenHash string) (int64, error) {
	rec, ok := s.records.Load(tokenHash)
	if !ok {
		return 0, domain.ErrTokenNotFound
	}
	return rec.calls.Add(1), nil
}

// Count returns the number of stored access tokens.
func (s *TokenStore) Count() int {
	return s.records.Len()
}

// List retrieves snapshots of all access tokens.
func (s *TokenStore) List(_ context.Context) ([]*domain.AccessToken, error) {
	result := make([]*domain.AccessToken, 0, s.records.Len())
	for _, rec := range s.records.All() {
		result = append(result, rec.snapshot())
	}
	return result, nil
}

// TotalCalls returns the sum of call counts over all stored access tokens.
func (s *TokenStore) TotalCalls() int64 {
	var total int64
	for _, rec := range s.records.All() {
		total += rec.calls.Load()
	}
	return total
}
