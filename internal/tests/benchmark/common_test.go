package benchmark

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/yndnr/randapi-go/internal/core/service"
	"github.com/yndnr/randapi-go/internal/storage/memory"
)

// TokenCounts defines registry sizes for benchmarking.
var TokenCounts = []int{1000, 10000, 100000}

// SmallTokenCounts for quick benchmarks.
var SmallTokenCounts = []int{1000, 10000}

// prefillRegistry issues count tokens and returns them in issue order.
func prefillRegistry(b *testing.B, count int) (*service.Registry, *memory.TokenStore, []string) {
	b.Helper()
	ctx := context.Background()
	store := memory.NewTokenStore()
	reg := service.NewRegistry(store, nil)

	tokens := make([]string, count)
	for i := range tokens {
		res, err := reg.Issue(ctx)
		if err != nil {
			b.Fatalf("Issue failed: %v", err)
		}
		tokens[i] = res.Token
	}
	return reg, store, tokens
}

// reportMemory reports heap usage after a GC.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}

// runWithTokenCounts runs benchFn once per registry size.
func runWithTokenCounts(b *testing.B, counts []int, benchFn func(b *testing.B, count int)) {
	for _, count := range counts {
		b.Run(fmt.Sprintf("tokens_%d", count), func(b *testing.B) {
			benchFn(b, count)
		})
	}
}
