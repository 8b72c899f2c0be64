// Package connection is the HTTP client randapi-cli uses to talk to a
// randapi-server. It attaches the X-API-Key header and decodes the
// server's JSON error bodies into APIError values.
package connection
