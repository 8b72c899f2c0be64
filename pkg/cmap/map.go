package cmap

import (
	"iter"
	"math/bits"
	"math/rand/v2"
	"sync"

	"github.com/spaolacci/murmur3"
)

// DefaultShards is used when New is given a non-positive shard count.
const DefaultShards = 16

type bucket[K ~string, V any] struct {
	sync.RWMutex
	m map[K]V
}

// Map is a sharded map. The zero value is not usable; call New.
type Map[K ~string, V any] struct {
	buckets []bucket[K, V]
	mask    uint64
	seed    uint32
}

// New returns a map with at least n shards, rounded up to a power of two.
func New[K ~string, V any](n int) *Map[K, V] {
	if n <= 0 {
		n = DefaultShards
	}
	n = 1 << bits.Len(uint(n-1))

	m := &Map[K, V]{
		buckets: make([]bucket[K, V], n),
		mask:    uint64(n - 1),
		seed:    rand.Uint32(),
	}
	for i := range m.buckets {
		m.buckets[i].m = make(map[K]V)
	}
	return m
}

func (m *Map[K, V]) bucketFor(k K) *bucket[K, V] {
	h := murmur3.Sum64WithSeed([]byte(k), m.seed)
	return &m.buckets[h&m.mask]
}

// Load returns the value stored under k.
func (m *Map[K, V]) Load(k K) (V, bool) {
	b := m.bucketFor(k)
	b.RLock()
	v, ok := b.m[k]
	b.RUnlock()
	return v, ok
}

// Store sets the value for k.
func (m *Map[K, V]) Store(k K, v V) {
	b := m.bucketFor(k)
	b.Lock()
	b.m[k] = v
	b.Unlock()
}

// LoadOrStore returns the existing value for k if present. Otherwise it
// stores v and returns it. loaded reports whether the value already existed.
func (m *Map[K, V]) LoadOrStore(k K, v V) (actual V, loaded bool) {
	b := m.bucketFor(k)
	b.Lock()
	defer b.Unlock()
	if old, ok := b.m[k]; ok {
		return old, true
	}
	b.m[k] = v
	return v, false
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	n := 0
	for i := range m.buckets {
		b := &m.buckets[i]
		b.RLock()
		n += len(b.m)
		b.RUnlock()
	}
	return n
}

// All yields every entry. Each shard is read-locked while it is walked, so
// the loop body must not write to the map. The result is not a
// point-in-time view of the whole map.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.buckets {
			b := &m.buckets[i]
			b.RLock()
			for k, v := range b.m {
				if !yield(k, v) {
					b.RUnlock()
					return
				}
			}
			b.RUnlock()
		}
	}
}
