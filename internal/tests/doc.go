// Package tests holds end-to-end tests that drive the assembled HTTP stack
// (router, middleware, registry, token store and metrics) through a real
// listener.
package tests
