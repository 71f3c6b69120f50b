package encoding

import "math"

// AtomicScale is the number of atomic units per display unit (10^7).
const AtomicScale = 10_000_000

// MaxDisplayAmount is the largest display amount that fits in an int64
// atomic value: (2^63 - 1) / 10^7.
const MaxDisplayAmount = float64(math.MaxInt64) / AtomicScale

// DisplayToAtomic converts a decimal display amount to its atomic int64
// representation, rounding half away from zero. The caller must ensure
// x is within [0, MaxDisplayAmount]; out-of-range values saturate rather
// than overflow silently.
func DisplayToAtomic(x float64) int64 {
	scaled := x * AtomicScale
	if scaled >= math.MaxInt64 {
		return math.MaxInt64
	}
	if scaled <= math.MinInt64 {
		return math.MinInt64
	}
	// Scale the whole and fractional parts separately so that whole
	// amounts too large for float64's mantissa still convert exactly.
	whole, frac := math.Modf(x)
	return int64(whole)*AtomicScale + int64(math.Round(frac*AtomicScale))
}

// AtomicToDisplay converts an atomic int64 value back to its decimal
// display amount.
func AtomicToDisplay(atomic int64) float64 {
	return float64(atomic) / AtomicScale
}
