// File: internal/engine/ttlset/lazy_heap_index.go
package ttlset

import (
	"container/heap"
	"time"

	"github.com/AutoCookies/pomai-ttl/pkg/clock"
)

// LazyHeapIndex backs the set with a plain expiry heap. Refreshing a TTL
// pushes a fresh record without touching the old one, so the heap may hold
// several records for one item; cleanup decides which records still speak
// for their item by re-checking the hash index. Simpler bookkeeping than
// HeapIndex at the cost of carrying superseded records until they surface.
type LazyHeapIndex struct {
	clk         clock.Clock
	expirations map[uint64]time.Time
	index       recordHeap
}

func NewLazyHeapIndex(clk clock.Clock) *LazyHeapIndex {
	return &LazyHeapIndex{
		clk:         clk,
		expirations: make(map[uint64]time.Time),
	}
}

func (s *LazyHeapIndex) Insert(item uint64, ttl time.Duration) {
	at := s.clk.Now().Add(ttl)
	s.expirations[item] = at
	heap.Push(&s.index, expiration{at: at, item: item})
}

func (s *LazyHeapIndex) Contains(item uint64) bool {
	s.clean(s.clk.Now())
	_, ok := s.expirations[item]
	return ok
}

func (s *LazyHeapIndex) clean(threshold time.Time) {
	for len(s.index) > 0 && !s.index[0].at.After(threshold) {
		rec := heap.Pop(&s.index).(expiration)
		// A later re-insert may have superseded this record; only drop the
		// item if its currently recorded expiry has also passed.
		if at, ok := s.expirations[rec.item]; ok && !at.After(threshold) {
			delete(s.expirations, rec.item)
		}
	}
}

// Len reports items not yet removed by cleanup.
func (s *LazyHeapIndex) Len() int {
	return len(s.expirations)
}

// recordHeap orders records earliest expiry first.
type recordHeap []expiration

func (h recordHeap) Len() int           { return len(h) }
func (h recordHeap) Less(i, j int) bool { return h[i].at.Before(h[j].at) }
func (h recordHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *recordHeap) Push(x any)        { *h = append(*h, x.(expiration)) }
func (h *recordHeap) Pop() any {
	old := *h
	n := len(old)
	rec := old[n-1]
	*h = old[:n-1]
	return rec
}
