package expmap

import (
	"time"

	"github.com/AutoCookies/pomai-ttl/pkg/clock"
)

// Lazy checks expiry on read and reclaims nothing, mirroring
// ttlset.Redactor.
type Lazy struct {
	clk     clock.Clock
	entries map[uint64]entry
}

func NewLazy(clk clock.Clock) *Lazy {
	return &Lazy{
		clk:     clk,
		entries: make(map[uint64]entry),
	}
}

func (m *Lazy) Put(key uint64, value string, ttl time.Duration) {
	m.entries[key] = entry{value: value, at: m.clk.Now().Add(ttl)}
}

func (m *Lazy) Get(key uint64) (string, bool) {
	now := m.clk.Now()
	e, ok := m.entries[key]
	if !ok || !now.Before(e.at) {
		return "", false
	}
	return e.value, true
}
