package ttlset

import (
	"time"

	"github.com/AutoCookies/pomai-ttl/pkg/clock"
)

// Redactor is the baseline strategy: it stores each item's expiry and
// checks it on read. Nothing is ever reclaimed, so memory grows with every
// distinct item inserted; useful as a reference point for the indexed
// strategies, not for long-lived sets.
type Redactor struct {
	clk         clock.Clock
	expirations map[uint64]time.Time
}

func NewRedactor(clk clock.Clock) *Redactor {
	return &Redactor{
		clk:         clk,
		expirations: make(map[uint64]time.Time),
	}
}

func (r *Redactor) Insert(item uint64, ttl time.Duration) {
	r.expirations[item] = r.clk.Now().Add(ttl)
}

func (r *Redactor) Contains(item uint64) bool {
	now := r.clk.Now()
	at, ok := r.expirations[item]
	return ok && now.Before(at)
}

// Len reports stored entries, expired or not.
func (r *Redactor) Len() int {
	return len(r.expirations)
}
