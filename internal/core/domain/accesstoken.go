// Package domain defines the core domain models for the Random Data API.
package domain

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/randapi-go/pkg/token"
)

// AccessTokenIDPrefix is the prefix of the public access token ID.
// The ID is safe to log; the token itself is not.
const AccessTokenIDPrefix = "rd-"

// StatusActive is the only status an access token can have.
const StatusActive = "active"

// AccessToken is the per-client record kept by the token registry.
//
// Values of this type are snapshots: CallCount reflects the counter at the
// moment the snapshot was taken.
type AccessToken struct {
	// ID is the public identifier (rd-{ulid_lowercase}), used in logs and metrics.
	ID string `json:"id"`

	// TokenHash is the SHA-256 hex digest of the plaintext token (store key).
	TokenHash string `json:"-"`

	// CreatedAt is the issuance time. Immutable.
	CreatedAt time.Time `json:"created_at"`

	// CallCount is the number of authorized requests made with the token.
	CallCount int64 `json:"call_count"`
}

// NewAccessToken creates a new AccessToken with a generated ID and token.
// Returns the record and the plaintext token (only returned once).
func NewAccessToken() (*AccessToken, string, error) {
	now := timeNow()

	id, err := ulid.New(ulid.Timestamp(now), ulid.Monotonic(rand.Reader, 0))
	if err != nil {
		return nil, "", ErrInternalServer.WithCause(err)
	}

	plain, err := token.Generate()
	if err != nil {
		return nil, "", ErrInternalServer.WithCause(err)
	}

	return &AccessToken{
		ID:        AccessTokenIDPrefix + strings.ToLower(id.String()),
		TokenHash: token.Hash(plain),
		CreatedAt: now,
	}, plain, nil
}

// IsValidAccessTokenID checks if a string is a valid public access token ID.
func IsValidAccessTokenID(id string) bool {
	if !strings.HasPrefix(id, AccessTokenIDPrefix) {
		return false
	}
	_, err := ulid.ParseStrict(strings.ToUpper(id[len(AccessTokenIDPrefix):]))
	return err == nil
}

// Clone creates a copy of the access token.
func (t *AccessToken) Clone() *AccessToken {
	clone := *t
	return &clone
}

// timeNow is a hook for testing.
var timeNow = time.Now
