package carousel

import "math"

// Wrap maps any integer onto [0, n) using floored modulo, so Wrap(-1, n) == n-1.
// n must be positive.
func Wrap(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}

// FloorMod returns x mod m in [0, m) for positive m, regardless of the sign of x.
func FloorMod(x, m float64) float64 {
	_, r := floorDivMod(x, m)
	return r
}

// floorDivMod returns q = floor(x/m) and r = x - q*m with r in [0, m).
// Both come from the same computation so that rounding cannot put the
// remainder at m while the quotient still points at the previous step.
func floorDivMod(x, m float64) (q, r float64) {
	r = math.Mod(x, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	q = math.Round((x - r) / m)
	return q, r
}

// wrapFloat wraps an integral float onto [0, n) without converting through int,
// which keeps very large offsets from overflowing.
func wrapFloat(i float64, n int) int {
	return int(FloorMod(i, float64(n)))
}
