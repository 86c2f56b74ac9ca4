package ttlset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AutoCookies/pomai-ttl/pkg/clock"
)

func TestLazyHeapIndexExpiry(t *testing.T) {
	clk := clock.NewManual(time.Unix(0, 0), time.Millisecond)
	s := NewLazyHeapIndex(clk)

	require.False(t, s.Contains(0))

	s.Insert(0, 15*time.Second)
	require.True(t, s.Contains(0))

	clk.Advance(10 * time.Second)
	require.True(t, s.Contains(0))

	clk.Advance(10 * time.Second)
	require.False(t, s.Contains(0))
	require.Empty(t, s.index)
}

// A refresh leaves the old record in the heap; when that record surfaces,
// cleanup must notice it was superseded and keep the item.
func TestLazyHeapIndexSupersededRecord(t *testing.T) {
	clk := clock.NewManual(time.Unix(0, 0), time.Millisecond)
	s := NewLazyHeapIndex(clk)

	s.Insert(0, 15*time.Second)
	s.Insert(0, 150*time.Second)
	require.Len(t, s.index, 2, "lazy refresh keeps the stale record around")

	clk.Advance(20 * time.Second)
	require.True(t, s.Contains(0), "superseded record must not evict the item")
	require.Len(t, s.index, 1, "the stale record itself should be gone")

	clk.Advance(140 * time.Second)
	require.False(t, s.Contains(0))
	require.Empty(t, s.index)
}
