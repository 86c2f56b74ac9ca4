package expmap

import (
	"fmt"
	"time"

	"github.com/tidwall/btree"

	"github.com/AutoCookies/pomai-ttl/pkg/clock"
)

// Incremental pairs the entry map with ordered expiry buckets, reclaiming
// expired entries during reads the way ttlset.TreeIndex does.
type Incremental struct {
	clk     clock.Clock
	entries map[uint64]entry
	index   *btree.BTreeG[bucket]
}

type bucket struct {
	at   time.Time
	keys map[uint64]struct{}
}

func NewIncremental(clk clock.Clock) *Incremental {
	return &Incremental{
		clk:     clk,
		entries: make(map[uint64]entry),
		index: btree.NewBTreeGOptions(func(a, b bucket) bool {
			return a.at.Before(b.at)
		}, btree.Options{NoLocks: true}),
	}
}

func (m *Incremental) Put(key uint64, value string, ttl time.Duration) {
	at := m.clk.Now().Add(ttl)
	if prev, ok := m.entries[key]; ok {
		m.unlink(prev.at, key)
	}
	m.entries[key] = entry{value: value, at: at}

	b, ok := m.index.Get(bucket{at: at})
	if !ok {
		b = bucket{at: at, keys: make(map[uint64]struct{})}
		m.index.Set(b)
	}
	b.keys[key] = struct{}{}
}

func (m *Incremental) unlink(prev time.Time, key uint64) {
	b, ok := m.index.Get(bucket{at: prev})
	if !ok {
		panic(fmt.Sprintf("expmap: no expiry bucket at %v for key %d", prev, key))
	}
	delete(b.keys, key)
	if len(b.keys) == 0 {
		m.index.Delete(bucket{at: prev})
	}
}

func (m *Incremental) Get(key uint64) (string, bool) {
	m.clean(m.clk.Now())
	e, ok := m.entries[key]
	if !ok {
		return "", false
	}
	return e.value, true
}

func (m *Incremental) clean(threshold time.Time) {
	for {
		b, ok := m.index.Min()
		if !ok || b.at.After(threshold) {
			return
		}
		m.index.PopMin()
		for key := range b.keys {
			delete(m.entries, key)
		}
	}
}
