// File: internal/engine/ttlset/heap_index.go
package ttlset

import (
	"time"

	"github.com/AutoCookies/pomai-ttl/packages/ds/mutheap"
	"github.com/AutoCookies/pomai-ttl/pkg/clock"
)

// HeapIndex backs the set with a handle-stable max heap of expiry records.
// Each item has exactly one record; refreshing a TTL relocates that record
// in place through its handle instead of pushing a duplicate.
type HeapIndex struct {
	clk     clock.Clock
	index   *mutheap.Heap[expiration]
	handles map[uint64]mutheap.Handle
}

func NewHeapIndex(clk clock.Clock) *HeapIndex {
	return &HeapIndex{
		clk: clk,
		// Ordering is reversed on time: the record expiring soonest is the
		// heap max, so cleanup pops records oldest-expiry-first.
		index: mutheap.New(func(a, b expiration) bool {
			return a.at.After(b.at)
		}),
		handles: make(map[uint64]mutheap.Handle),
	}
}

func (s *HeapIndex) Insert(item uint64, ttl time.Duration) {
	at := s.clk.Now().Add(ttl)
	hd, ok := s.handles[item]
	if !ok {
		s.handles[item] = s.index.Push(expiration{at: at, item: item})
		return
	}
	// Priority is inverted relative to time: moving the expiry earlier
	// raises the record toward the root, moving it later sinks it. Exactly
	// one of the two conditional mutations fires.
	s.index.Increment(hd, func(e *expiration) {
		if at.Before(e.at) {
			e.at = at
		}
	})
	s.index.Decrement(hd, func(e *expiration) {
		if at.After(e.at) {
			e.at = at
		}
	})
}

func (s *HeapIndex) Contains(item uint64) bool {
	s.clean(s.clk.Now())
	_, ok := s.handles[item]
	return ok
}

// clean pops every record whose expiry has passed. Records are unique per
// item, so the popped record is always the item's current one and the id
// can be dropped unconditionally.
func (s *HeapIndex) clean(threshold time.Time) {
	for {
		e, ok := s.index.PeekMax()
		if !ok || e.at.After(threshold) {
			return
		}
		delete(s.handles, e.item)
		s.index.PopMax()
	}
}

// Len reports items not yet removed by cleanup.
func (s *HeapIndex) Len() int {
	return len(s.handles)
}
