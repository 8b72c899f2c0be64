// Package cmap is a sharded, string-keyed map safe for concurrent use.
//
// Keys are spread over a power-of-two number of shards with a seeded
// murmur3 hash; each shard has its own RWMutex.
//
//	m := cmap.New[string, *Record](0)
//	if _, loaded := m.LoadOrStore(k, rec); loaded {
//		// k was already present and kept its value
//	}
//	for k, v := range m.All() {
//		...
//	}
package cmap
