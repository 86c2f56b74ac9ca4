package ttlset

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AutoCookies/pomai-ttl/pkg/clock"
)

// All four strategies must answer every Contains identically over any
// operation sequence. Each strategy owns its own manual clock with the same
// parameters; every strategy reads its clock exactly once per operation, so
// the clocks stay in lockstep. This also pins down the heap index's refresh
// direction under its reversed comparator: a sign error there shows up as a
// divergence from the tree index within a few hundred steps.
func TestStrategyEquivalence(t *testing.T) {
	const (
		steps = 20000
		ids   = 24
	)
	start := time.Unix(1_700_000_000, 0)

	type fixture struct {
		name string
		set  Set
		clk  *clock.Manual
	}
	var fixtures []fixture
	for _, f := range []struct {
		name  string
		build func(clk clock.Clock) Set
	}{
		{"redactor", func(clk clock.Clock) Set { return NewRedactor(clk) }},
		{"heap", func(clk clock.Clock) Set { return NewHeapIndex(clk) }},
		{"lazyheap", func(clk clock.Clock) Set { return NewLazyHeapIndex(clk) }},
		{"tree", func(clk clock.Clock) Set { return NewTreeIndex(clk) }},
	} {
		clk := clock.NewManual(start, time.Millisecond)
		fixtures = append(fixtures, fixture{name: f.name, set: f.build(clk), clk: clk})
	}

	rng := rand.New(rand.NewSource(1234))
	for step := 0; step < steps; step++ {
		id := uint64(rng.Intn(ids))
		switch rng.Intn(5) {
		case 0, 1:
			ttl := time.Duration(1+rng.Intn(400)) * time.Millisecond
			for _, fx := range fixtures {
				fx.set.Insert(id, ttl)
			}
		case 2, 3:
			want := fixtures[0].set.Contains(id)
			for _, fx := range fixtures[1:] {
				require.Equal(t, want, fx.set.Contains(id),
					"step %d: %s disagrees with %s on id %d",
					step, fx.name, fixtures[0].name, id)
			}
		case 4:
			d := time.Duration(rng.Intn(100)) * time.Millisecond
			for _, fx := range fixtures {
				fx.clk.Advance(d)
			}
		}
	}
}
