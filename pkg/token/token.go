package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const (
	// Size is the number of random bytes in a key.
	Size = 16
	// EncodedLength is the length of a key as returned by Generate.
	EncodedLength = 2 * Size
)

// Generate returns a new random key.
func Generate() (string, error) {
	var b [Size]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("token: read random: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}

// Hash returns the hex SHA-256 digest of key, the form keys are stored in.
func Hash(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// IsWellFormed reports whether s could have come from Generate.
func IsWellFormed(s string) bool {
	if len(s) != EncodedLength {
		return false
	}
	for _, c := range []byte(s) {
		switch {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f':
		default:
			return false
		}
	}
	return true
}
