// Package metric provides Prometheus metrics for the Random Data API.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: metric registry, recording helpers and HTTP handler
//   - collector.go: collector that reads token usage from the store at scrape time
//
// Every Registry owns its own prometheus.Registry, so tests can create
// isolated instances. Global returns the process-wide one.
//
// Metrics are exposed at /metrics in Prometheus text format.
package metric
