// Package main provides the entry point for randapi-server.
//
// The server issues API keys on POST /register and serves random users,
// quotes and jokes to callers presenting a key in the X-API-Key header.
//
// Usage:
//
//	randapi-server [flags]
//	randapi-server --config /etc/randapi/config.yaml
//	PORT=8080 randapi-server
package main
