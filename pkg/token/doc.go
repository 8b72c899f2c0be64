// Package token generates and hashes API keys.
//
// A key is 16 random bytes from crypto/rand written as 32 lowercase hex
// characters. Only its SHA-256 digest is ever stored.
package token
