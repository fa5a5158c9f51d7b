package spiral

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/katalvlaran/motionkit/tuning"
)

// X returns the x coordinate of the index-th of total points at time.
// Returns ErrNonPositiveTotal when total ≤ 0.
// Complexity: O(1), no allocation.
func X(index, total int32, time float32) (float32, error) {
	if total <= 0 {
		return 0, spiralErrorf(opX, index, total, ErrNonPositiveTotal)
	}
	angle, radius := polar(index, total, time)

	return float32(math.Cos(float64(angle)) * float64(radius)), nil
}

// Y returns the vertical bob sin(time + index·0.1)·2 of the index-th point.
// It does not depend on total and is bounded in [-2, 2].
// Complexity: O(1), no allocation.
func Y(index int32, time float32) float32 {
	phase := time + float32(float32(index)*tuning.SpiralBobPhase)

	return float32(math.Sin(float64(phase)) * float64(tuning.SpiralBobAmplitude))
}

// Z returns the z coordinate of the index-th of total points at time.
// Returns ErrNonPositiveTotal when total ≤ 0.
// Complexity: O(1), no allocation.
func Z(index, total int32, time float32) (float32, error) {
	if total <= 0 {
		return 0, spiralErrorf(opZ, index, total, ErrNonPositiveTotal)
	}
	angle, radius := polar(index, total, time)

	return float32(math.Sin(float64(angle)) * float64(radius)), nil
}

// Point returns (X, Y, Z) as one vector. It is exactly the three coordinate
// functions evaluated with the same arguments.
// Returns ErrNonPositiveTotal when total ≤ 0.
func Point(index, total int32, time float32) (mgl32.Vec3, error) {
	if total <= 0 {
		return mgl32.Vec3{}, spiralErrorf(opPoint, index, total, ErrNonPositiveTotal)
	}
	angle, radius := polar(index, total, time)

	return mgl32.Vec3{
		float32(math.Cos(float64(angle)) * float64(radius)),
		Y(index, time),
		float32(math.Sin(float64(angle)) * float64(radius)),
	}, nil
}

// Radius returns (index/total)·5, the distance of the index-th point from
// the spiral axis. Returns ErrNonPositiveTotal when total ≤ 0.
func Radius(index, total int32) (float32, error) {
	if total <= 0 {
		return 0, spiralErrorf(opRadius, index, total, ErrNonPositiveTotal)
	}
	_, radius := polar(index, total, 0)

	return radius, nil
}

// polar computes the shared derived quantities
//
//	t      = index/total
//	angle  = t·4π + time
//	radius = t·5
//
// total must already be validated.
func polar(index, total int32, time float32) (angle, radius float32) {
	t := float32(index) / float32(total)
	angle = float32(t*tuning.SpiralTurns) + time
	radius = t * tuning.SpiralRadius

	return angle, radius
}
