// SPDX-License-Identifier: MIT
// Package: motionkit/tuning
//
// constants.go — named compile-time constants shared by all kernel groups.
//
// Contract:
//   • No magic literals in kernel code; every coefficient lives here.
//   • wave.FastHeight reuses the Wave1* block verbatim, so the fast and the
//     full wave stay phase-locked when mixed in one scene.

package tuning

import "math"

//-----------------------------------------------------------------------------
// Wave Synthesizer
//   wave1 = sin(x·Wave1FreqX + time) · cos(z·Wave1FreqZ + time)
//   wave2 = cos(x·Wave2FreqX − time·Wave2RateX) · sin(z·Wave2FreqZ + time·Wave2RateZ)
//   h     = (wave1 + Wave2Weight·wave2) · WaveAmplitude
//-----------------------------------------------------------------------------

const (
	// Wave1FreqX is the spatial frequency of the primary term along x.
	Wave1FreqX float32 = 0.5
	// Wave1FreqZ is the spatial frequency of the primary term along z.
	Wave1FreqZ float32 = 0.5

	// Wave2FreqX is the spatial frequency of the secondary term along x.
	Wave2FreqX float32 = 0.3
	// Wave2FreqZ is the spatial frequency of the secondary term along z.
	Wave2FreqZ float32 = 0.4
	// Wave2RateX is the temporal rate subtracted in the secondary x phase.
	Wave2RateX float32 = 0.5
	// Wave2RateZ is the temporal rate added in the secondary z phase.
	Wave2RateZ float32 = 0.3

	// Wave2Weight scales the secondary term before superposition.
	Wave2Weight float32 = 0.5
	// WaveAmplitude scales the superposed height.
	WaveAmplitude float32 = 2.0

	// WaveBound is the largest |Height| can reach: (1 + Wave2Weight)·WaveAmplitude.
	WaveBound float32 = (1 + Wave2Weight) * WaveAmplitude
	// FastWaveBound is the largest |FastHeight| can reach.
	FastWaveBound float32 = WaveAmplitude
)

//-----------------------------------------------------------------------------
// Spiral Parametrizer
//   t = index/total, angle = t·SpiralTurns + time, radius = t·SpiralRadius
//-----------------------------------------------------------------------------

const (
	// SpiralTurns is the angular sweep from the first to the last point (4π,
	// two full rotations).
	SpiralTurns float32 = 4 * math.Pi
	// SpiralRadius is the radius reached at t = 1.
	SpiralRadius float32 = 5.0
	// SpiralBobPhase is the per-index phase offset of the vertical bob, radians.
	SpiralBobPhase float32 = 0.1
	// SpiralBobAmplitude is the amplitude of the vertical bob.
	SpiralBobAmplitude float32 = 2.0
)

//-----------------------------------------------------------------------------
// Color Mapper
//   c = (sin(coord·ColorFreq) + ColorLift) · ColorScale
//-----------------------------------------------------------------------------

const (
	// ColorFreq is the spatial frequency of every colour channel.
	ColorFreq float32 = 0.3
	// ColorLift shifts sin from [-1,1] to [0,2].
	ColorLift float32 = 1.0
	// ColorScale maps [0,2] onto [0,1].
	ColorScale float32 = 0.5

	// ColorPeriod is the input period of a channel: 2π / ColorFreq = 20π/3.
	ColorPeriod = 20 * math.Pi / 3
)

//-----------------------------------------------------------------------------
// Noise Sampler
//-----------------------------------------------------------------------------

// HashScale is the multiplier applied to sin(cell + seed) before the
// fractional part is taken. The classic shader constant.
const HashScale = 43758.5453
