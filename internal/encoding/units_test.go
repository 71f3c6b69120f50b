package encoding

import "testing"

func TestDisplayAtomicRoundTrip(t *testing.T) {
	cases := []int64{0, 1, 7, 10_000_000, 123_456_789, 9_223_372_036_854_775807 / AtomicScale * AtomicScale}
	for _, atomic := range cases {
		display := AtomicToDisplay(atomic)
		got := DisplayToAtomic(display)
		if got != atomic {
			t.Errorf("round trip failed for %d: display=%v, back=%d", atomic, display, got)
		}
	}
}

func TestDisplayToAtomicRounding(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{1.0, 10_000_000},
		{0.0000001, 1},
		{2.5, 25_000_000},
		{-1.0, -10_000_000},
	}
	for _, c := range cases {
		if got := DisplayToAtomic(c.in); got != c.want {
			t.Errorf("DisplayToAtomic(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}
