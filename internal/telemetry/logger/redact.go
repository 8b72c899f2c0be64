package logger

import (
	"log/slog"
	"regexp"
	"strings"
)

// Masked is the placeholder for values under sensitive keys.
const Masked = "***REDACTED***"

// tokenPattern matches an access token (32 lowercase hex characters)
// standing on its own inside a larger string.
var tokenPattern = regexp.MustCompile(`\b[0-9a-f]{32}\b`)

// sensitiveKeys are substrings that mark an attribute key as secret.
var sensitiveKeys = []string{"password", "secret", "token", "key", "credential", "auth", "bearer"}

// publicKeys hold 32-hex identifiers that are safe to log.
var publicKeys = map[string]bool{
	"trace_id": true,
	"span_id":  true,
}

// Redact is a slog ReplaceAttr function. It replaces values under
// sensitive keys and masks access tokens embedded in any string or error.
func Redact(_ []string, a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		return slog.String(a.Key, redactString(a.Key, a.Value.String()))
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok {
			return slog.String(a.Key, redactString(a.Key, err.Error()))
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			out[i] = Redact(nil, ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	}
	return a
}

func redactString(key, v string) string {
	if v == "" || publicKeys[key] {
		return v
	}
	if IsSensitiveKey(key) {
		return Masked
	}
	return MaskTokens(v)
}

// MaskTokens masks every access token found in s, keeping three
// characters at each end.
func MaskTokens(s string) string {
	return tokenPattern.ReplaceAllStringFunc(s, func(tok string) string {
		return tok[:3] + "..." + tok[len(tok)-3:]
	})
}

// IsSensitiveKey reports whether an attribute key names a secret.
func IsSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(k, s) {
			return true
		}
	}
	return false
}
