package noise

import "math"

// belowOne is the largest float32 strictly less than 1.
var belowOne = math.Nextafter32(1, 0)

// Sample returns the value noise at x for the given seed, using SineHash
// lattice values. The result is nominally in [0, 1).
// Complexity: O(1), two sin evaluations, no allocation.
func Sample(x, seed float32) float32 {
	return sampleValue(SineHash{}, x, seed)
}

// CellValues returns the two lattice endpoints (a, b) of the unit cell that
// contains x. For every integer i, CellValues(i+0.5).b == CellValues(i+1).a.
func CellValues(x, seed float32) (a, b float32) {
	i := float32(math.Floor(float64(x)))

	return SineHash{}.Value(i, seed), SineHash{}.Value(i+1, seed)
}

// Fract returns v − floor(v), in [0, 1) for every finite v regardless of sign.
// A tiny negative v would make v − floor(v) round to exactly 1; that case is
// clamped to the largest float64 below 1. NaN and ±Inf return NaN.
func Fract(v float64) float64 {
	r := v - math.Floor(v)
	if r >= 1 {
		return math.Nextafter(1, 0)
	}

	return r
}

// Smoothstep returns the cubic Hermite ease f²·(3 − 2f).
// For f in [0,1] it is in [0,1], with zero first derivative at both ends.
func Smoothstep(f float32) float32 {
	return f * f * (3 - 2*f)
}

// sampleValue interpolates the lattice values around x with the ease curve.
func sampleValue(l Lattice, x, seed float32) float32 {
	i := float32(math.Floor(float64(x)))
	f := x - i // exact for finite x; NaN propagates

	a := l.Value(i, seed)
	b := l.Value(i+1, seed)
	u := Smoothstep(f)

	return a*(1-u) + b*u
}

// unit32 narrows a [0,1) float64 to float32 without letting rounding reach 1.
// Values below 0 are lifted to 0; NaN passes through.
func unit32(r float64) float32 {
	v := float32(r)
	if v >= 1 {
		return belowOne
	}
	if v < 0 {
		return 0
	}

	return v
}
