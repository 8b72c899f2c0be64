// Package benchmark holds benchmarks for key handling, the registry and the
// HTTP router.
//
//	go test -run=^$ -bench=. -benchmem ./internal/tests/benchmark/
package benchmark
