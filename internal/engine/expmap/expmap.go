// Package expmap implements an expiring key/value map: the value-carrying
// companion to ttlset. Entries are readable for a fixed duration after Put;
// a Put on an existing key replaces both value and expiry. Same ownership
// model as ttlset: one logical owner, no internal locking.
package expmap

import "time"

// Map stores values under keys for a time-to-live.
type Map interface {
	Put(key uint64, value string, ttl time.Duration)
	Get(key uint64) (string, bool)
}

type entry struct {
	value string
	at    time.Time
}
