package clock

import (
	"testing"
	"time"
)

func TestManualAutoAdvance(t *testing.T) {
	c := NewManual(time.Unix(0, 0), time.Millisecond)

	a := c.Now()
	b := c.Now()
	if !a.Before(b) {
		t.Fatalf("expected strictly increasing reads, got %v then %v", a, b)
	}
	if got := b.Sub(a); got != time.Millisecond {
		t.Fatalf("expected 1ms quantum between reads, got %v", got)
	}
}

func TestManualAdvance(t *testing.T) {
	c := NewManual(time.Unix(0, 0), 0)

	a := c.Now()
	if b := c.Now(); !b.Equal(a) {
		t.Fatalf("zero quantum clock moved between reads: %v -> %v", a, b)
	}

	c.Advance(10 * time.Second)
	if got := c.Now().Sub(a); got != 10*time.Second {
		t.Fatalf("expected 10s jump after Advance, got %v", got)
	}
}
