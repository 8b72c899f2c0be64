// Package tracer provides OpenTelemetry tracing for the Random Data API.
//
// New builds an SDK tracer provider with one of three exporters:
//
//   - stdout: pretty-printed spans on a writer (local debugging)
//   - otlp: OTLP/gRPC to a collector endpoint
//   - none: spans are created and sampled but discarded
//
// When tracing is disabled the provider hands out no-op tracers, so
// callers never need to check whether tracing is on.
package tracer
