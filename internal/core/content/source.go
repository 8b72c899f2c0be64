package content

import (
	crand "crypto/rand"
	"math/rand/v2"
	"sync"
)

// LockedSource is a Source safe for concurrent use.
type LockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSource returns a ChaCha8 generator seeded from crypto/rand.
func NewSource() *LockedSource {
	var seed [32]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(seed[:])
	return &LockedSource{rnd: rand.New(rand.NewChaCha8(seed))}
}

// NewSeededSource returns a deterministic Source. Intended for tests and demos.
func NewSeededSource(seed1, seed2 uint64) *LockedSource {
	return &LockedSource{rnd: rand.New(rand.NewPCG(seed1, seed2))}
}

// IntN implements Source.
func (s *LockedSource) IntN(n int) int {
	s.mu.Lock()
	v := s.rnd.IntN(n)
	s.mu.Unlock()
	return v
}
