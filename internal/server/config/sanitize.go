package config

import (
	"net/url"
	"slices"
)

// Sanitize returns a copy of the config with sensitive fields masked.
//
// This is used for logging configuration without exposing secrets.
func Sanitize(cfg *ServerConfig) *ServerConfig {
	sanitized := *cfg
	sanitized.Server.HTTP.CORSOrigins = slices.Clone(cfg.Server.HTTP.CORSOrigins)

	if sanitized.Tracing.Endpoint != "" {
		sanitized.Tracing.Endpoint = maskEndpoint(sanitized.Tracing.Endpoint)
	}

	return &sanitized
}

// maskEndpoint hides the password of a collector URL.
func maskEndpoint(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.User == nil {
		return endpoint
	}
	return u.Redacted()
}
