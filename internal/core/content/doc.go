// Package content generates the randomized payloads served by the API.
//
// Every generator is a pure function over a Source. Production code passes
// the value returned by NewSource; tests pass a seeded *rand.Rand so that
// results are reproducible.
package content
