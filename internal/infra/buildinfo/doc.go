// Package buildinfo exposes the version of randapi binaries.
//
// Values are injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/randapi-go/internal/infra/buildinfo.Version=v1.0.0 \
//	  -X github.com/yndnr/randapi-go/internal/infra/buildinfo.Commit=abc123"
package buildinfo
