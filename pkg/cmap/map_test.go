package cmap

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew_ShardRounding(t *testing.T) {
	tests := []struct{ in, want int }{
		{-1, DefaultShards},
		{0, DefaultShards},
		{1, 1},
		{3, 4},
		{16, 16},
		{17, 32},
	}
	for _, tt := range tests {
		if got := len(New[string, int](tt.in).buckets); got != tt.want {
			t.Errorf("New(%d) has %d shards, want %d", tt.in, got, tt.want)
		}
	}
}

type hashKey string

func TestLoadStore(t *testing.T) {
	m := New[hashKey, int](4)

	if _, ok := m.Load("a"); ok {
		t.Fatal("Load on empty map found a value")
	}
	m.Store("a", 1)
	m.Store("a", 2)
	if v, ok := m.Load("a"); !ok || v != 2 {
		t.Fatalf("Load(a) = %d, %v; want 2, true", v, ok)
	}
	m.Store("b", 3)
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
}

func TestLoadOrStore_KeepsFirst(t *testing.T) {
	m := New[string, string](0)

	if v, loaded := m.LoadOrStore("k", "first"); loaded || v != "first" {
		t.Fatalf("first LoadOrStore = %q, %v", v, loaded)
	}
	if v, loaded := m.LoadOrStore("k", "second"); !loaded || v != "first" {
		t.Fatalf("second LoadOrStore = %q, %v", v, loaded)
	}
}

func TestAll(t *testing.T) {
	m := New[string, int](8)
	for i := range 10 {
		m.Store(fmt.Sprint("k", i), i)
	}

	sum := 0
	for _, v := range m.All() {
		sum += v
	}
	if sum != 45 {
		t.Errorf("sum = %d, want 45", sum)
	}

	seen := 0
	for range m.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	if seen != 3 {
		t.Errorf("early break visited %d entries", seen)
	}
}

func TestConcurrentLoadOrStore(t *testing.T) {
	m := New[string, int](0)
	var winners atomic.Int32
	var wg sync.WaitGroup

	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, loaded := m.LoadOrStore("hot", i); !loaded {
				winners.Add(1)
			}
			for j := range 50 {
				m.Store(fmt.Sprintf("w%d-%d", i, j), j)
				m.Load("hot")
			}
		}()
	}
	wg.Wait()

	if winners.Load() != 1 {
		t.Errorf("winners = %d, want 1", winners.Load())
	}
	if m.Len() != 64*50+1 {
		t.Errorf("Len = %d, want %d", m.Len(), 64*50+1)
	}
}
