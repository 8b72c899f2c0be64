// Package tlsroots manages TLS material for randapi.
//
//   - roots.go: trusted CA pools for randapi-cli (system roots plus --ca-file)
//   - watcher.go: server certificate hot reload via fsnotify
//
// The server only terminates TLS when server.http.tls.enabled is set;
// otherwise it serves plain HTTP.
package tlsroots
