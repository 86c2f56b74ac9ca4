// File: internal/engine/ttlset/tree_index.go
package ttlset

import (
	"fmt"
	"time"

	"github.com/tidwall/btree"

	"github.com/AutoCookies/pomai-ttl/pkg/clock"
)

// TreeIndex backs the set with an ordered tree of expiry buckets: one
// bucket per distinct expiry instant, holding the ids expiring then.
// Refreshing a TTL moves the id between buckets, so there is no handle
// bookkeeping; cleanup detaches whole buckets from the low end of the tree.
type TreeIndex struct {
	clk         clock.Clock
	expirations map[uint64]time.Time
	index       *btree.BTreeG[bucket]
}

type bucket struct {
	at  time.Time
	ids map[uint64]struct{}
}

func NewTreeIndex(clk clock.Clock) *TreeIndex {
	return &TreeIndex{
		clk:         clk,
		expirations: make(map[uint64]time.Time),
		// Single-owner structure; skip the tree's internal locking.
		index: btree.NewBTreeGOptions(func(a, b bucket) bool {
			return a.at.Before(b.at)
		}, btree.Options{NoLocks: true}),
	}
}

func (s *TreeIndex) Insert(item uint64, ttl time.Duration) {
	at := s.clk.Now().Add(ttl)
	if prev, ok := s.expirations[item]; ok {
		s.unlink(prev, item)
	}
	s.expirations[item] = at

	b, ok := s.index.Get(bucket{at: at})
	if !ok {
		b = bucket{at: at, ids: make(map[uint64]struct{})}
		s.index.Set(b)
	}
	b.ids[item] = struct{}{}
}

// unlink removes item from the bucket holding its previous expiry,
// dropping the bucket once empty. The bucket must exist: the hash index
// and the tree are updated together, so a miss means the correspondence
// invariant is broken.
func (s *TreeIndex) unlink(prev time.Time, item uint64) {
	b, ok := s.index.Get(bucket{at: prev})
	if !ok {
		panic(fmt.Sprintf("ttlset: no expiry bucket at %v for item %d", prev, item))
	}
	delete(b.ids, item)
	if len(b.ids) == 0 {
		s.index.Delete(bucket{at: prev})
	}
}

func (s *TreeIndex) Contains(item uint64) bool {
	s.clean(s.clk.Now())
	_, ok := s.expirations[item]
	return ok
}

func (s *TreeIndex) clean(threshold time.Time) {
	for {
		b, ok := s.index.Min()
		if !ok || b.at.After(threshold) {
			return
		}
		s.index.PopMin()
		for id := range b.ids {
			delete(s.expirations, id)
		}
	}
}

// Len reports items not yet removed by cleanup.
func (s *TreeIndex) Len() int {
	return len(s.expirations)
}
