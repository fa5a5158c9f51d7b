package wave

import (
	"math"

	"github.com/katalvlaran/motionkit/tuning"
)

// Height returns the terrain height at (x, z) for the given time.
//
// Model:
//   - wave1 = sin(x·0.5 + t) · cos(z·0.5 + t)
//   - wave2 = cos(x·0.3 − t·0.5) · sin(z·0.4 + t·0.3)
//   - h     = (wave1 + 0.5·wave2) · 2.0
//
// Phases are formed in float32 (the kernel's working precision); the
// transcendental calls and the superposition run in float64 and are rounded
// once on return.
//
// Complexity: O(1), four trig evaluations, no allocation.
func Height(x, z, time float32) float32 {
	w1 := primary(x, z, time)
	w2 := secondary(x, z, time)

	return float32((w1 + float64(tuning.Wave2Weight)*w2) * float64(tuning.WaveAmplitude))
}

// FastHeight returns wave1 · 2.0, the primary term of Height alone.
// It uses exactly the phase and frequency constants of Height's primary term.
//
// Complexity: O(1), two trig evaluations, no allocation.
func FastHeight(x, z, time float32) float32 {
	return float32(primary(x, z, time) * float64(tuning.WaveAmplitude))
}

// primary evaluates wave1 = sin(x·0.5 + t) · cos(z·0.5 + t).
func primary(x, z, time float32) float64 {
	px := float32(x*tuning.Wave1FreqX) + time
	pz := float32(z*tuning.Wave1FreqZ) + time

	return math.Sin(float64(px)) * math.Cos(float64(pz))
}

// secondary evaluates wave2 = cos(x·0.3 − t·0.5) · sin(z·0.4 + t·0.3).
func secondary(x, z, time float32) float64 {
	px := float32(x*tuning.Wave2FreqX) - float32(time*tuning.Wave2RateX)
	pz := float32(z*tuning.Wave2FreqZ) + float32(time*tuning.Wave2RateZ)

	return math.Cos(float64(px)) * math.Sin(float64(pz))
}
