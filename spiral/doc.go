// Package spiral maps the index-th of total particles to a point on a
// time-rotating, radially expanding helix.
//
// For t = index/total:
//
//	angle  = t·4π + time
//	radius = t·5
//	X      = cos(angle)·radius
//	Z      = sin(angle)·radius
//	Y      = sin(time + index·0.1)·2
//
// (X, Z) lies on the circle of the given radius; across index 0..total−1 the
// points sweep two full rotations plus the rotation contributed by time. Y
// bobs every point with a per-index phase offset and ignores total.
//
// Error policy: total ≤ 0 is rejected with ErrNonPositiveTotal by every
// function that divides by total (X, Z, Point, Radius), before any division.
// Y never fails. Non-finite time propagates as NaN.
package spiral
