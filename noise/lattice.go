package noise

import (
	"math"

	"github.com/katalvlaran/motionkit/tuning"
)

// Lattice assigns a pseudo-random value in [0, 1) to an integer lattice
// cell (passed as a float32 holding an integer) for a seed.
// Implementations must be pure: same (cell, seed) → same value.
type Lattice interface {
	Value(cell, seed float32) float32
}

// SineHash is the classic shader hash fract(sin(cell + seed)·43758.5453).
// Fast and allocation-free, but low quality: nearby seeds are correlated.
type SineHash struct{}

// Value implements Lattice.
func (SineHash) Value(cell, seed float32) float32 {
	s := math.Sin(float64(cell + seed))

	return unit32(Fract(s * tuning.HashScale))
}

// MixHash hashes the integer cell and the seed bits through a 32-bit
// avalanche mixer. Seeds that differ in any bit give unrelated fields.
type MixHash struct{}

// Value implements Lattice. The top 24 bits of the hash become the float32
// mantissa, so the result is exactly representable and strictly below 1.
func (MixHash) Value(cell, seed float32) float32 {
	h := math.Float32bits(seed)
	h ^= uint32(int64(cell)) * 0x9e3779b1
	h = mix32(h)

	return float32(h>>8) / (1 << 24)
}

// mix32 is a murmur-finalizer style avalanche of a 32-bit word.
func mix32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16

	return x
}
