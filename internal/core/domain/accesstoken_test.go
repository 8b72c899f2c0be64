package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/yndnr/randapi-go/pkg/token"
)

func TestNewAccessToken(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	orig := timeNow
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = orig }()

	rec, plain, err := NewAccessToken()
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}

	if !token.IsWellFormed(plain) {
		t.Errorf("plaintext token %q is not well formed", plain)
	}
	if rec.TokenHash != token.Hash(plain) {
		t.Error("TokenHash does not match the plaintext token")
	}
	if strings.Contains(rec.TokenHash, plain) {
		t.Error("TokenHash must not embed the plaintext token")
	}
	if !rec.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", rec.CreatedAt, fixed)
	}
	if rec.CallCount != 0 {
		t.Errorf("CallCount = %d, want 0", rec.CallCount)
	}
	if !IsValidAccessTokenID(rec.ID) {
		t.Errorf("ID %q is not a valid access token ID", rec.ID)
	}
}

func TestNewAccessToken_Unique(t *testing.T) {
	ids := make(map[string]bool)
	tokens := make(map[string]bool)

	for i := 0; i < 200; i++ {
		rec, plain, err := NewAccessToken()
		if err != nil {
			t.Fatalf("NewAccessToken() error = %v", err)
		}
		if ids[rec.ID] {
			t.Fatalf("duplicate ID %s", rec.ID)
		}
		if tokens[plain] {
			t.Fatalf("duplicate token")
		}
		ids[rec.ID] = true
		tokens[plain] = true
	}
}

func TestIsValidAccessTokenID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"rd-01hx5n3f0k8v9w2y4z6a7b8c9d", true},
		{"RD-01hx5n3f0k8v9w2y4z6a7b8c9d", false},
		{"rd-", false},
		{"rd-not-a-ulid", false},
		{"xx-01hx5n3f0k8v9w2y4z6a7b8c9d", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := IsValidAccessTokenID(tt.id); got != tt.valid {
				t.Errorf("IsValidAccessTokenID(%q) = %v, want %v", tt.id, got, tt.valid)
			}
		})
	}
}

func TestAccessToken_Clone(t *testing.T) {
	rec := &AccessToken{ID: "rd-x", TokenHash: "h", CreatedAt: time.Now(), CallCount: 3}
	clone := rec.Clone()

	clone.CallCount = 10
	if rec.CallCount != 3 {
		t.Error("Clone should not share state with the original")
	}
}
