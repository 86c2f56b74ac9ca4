// Package ttlset implements an expiring-membership set: items are members
// for a fixed duration after insertion, and membership is answered relative
// to an injected clock.
//
// Four interchangeable strategies implement the same Set contract, differing
// in how (and whether) they reclaim memory held by expired entries:
//
//   - Redactor: no index; expiry checked lazily on read. O(1) everywhere,
//     expired entries are never reclaimed.
//   - LazyHeapIndex: container/heap of expiry records, duplicates allowed;
//     reads pop stale records.
//   - HeapIndex: mutable heap with stable handles; exactly one record per
//     item, relocated in place on refresh.
//   - TreeIndex: ordered buckets keyed by expiry instant; refresh moves the
//     item between buckets.
//
// The indexed strategies clean incrementally: each Contains call discards
// only the records that expired since the previous call, so reclamation cost
// is amortized across read traffic. No strategy is safe for concurrent use;
// callers sharing an instance must serialize access externally.
package ttlset

import "time"

// Set records items for a time-to-live. Insert refreshes an existing item's
// expiry rather than duplicating it. Contains reports whether the item's
// most recent TTL has not yet elapsed; there is no explicit delete.
type Set interface {
	Insert(item uint64, ttl time.Duration)
	Contains(item uint64) bool
}

// expiration is one expiry record in a backing index.
type expiration struct {
	at   time.Time
	item uint64
}
