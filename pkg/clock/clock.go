// Package clock abstracts the time source so the expiry strategies can be
// driven deterministically in tests. Every strategy instance owns exactly
// one Clock; nothing in this module reads time.Now directly.
package clock

import "time"

// Clock supplies the current instant. Readings are totally ordered but need
// not be distinct.
type Clock interface {
	Now() time.Time
}

// System reads the real monotonic clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Manual is a controllable clock for tests. Every Now read auto-advances
// the cursor by the configured quantum, so repeated reads are strictly
// increasing even without an explicit Advance. Not safe for concurrent use.
type Manual struct {
	cur     time.Time
	quantum time.Duration
}

// NewManual returns a Manual clock starting at start. A zero quantum
// freezes the cursor between Advance calls.
func NewManual(start time.Time, quantum time.Duration) *Manual {
	return &Manual{cur: start, quantum: quantum}
}

func (c *Manual) Now() time.Time {
	c.cur = c.cur.Add(c.quantum)
	return c.cur
}

// Advance moves the cursor forward by d.
func (c *Manual) Advance(d time.Duration) {
	c.cur = c.cur.Add(d)
}
