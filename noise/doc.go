// Package noise samples smoothed, seedable 1D value noise.
//
// 🚀 Algorithm (Sample):
//
//	i = floor(x), f = x − i
//	a = fract(sin(i + seed)     · 43758.5453)
//	b = fract(sin(i + 1 + seed) · 43758.5453)
//	u = f²·(3 − 2f)                 (smoothstep / ease curve)
//	n = a·(1 − u) + b·u
//
// The b of cell i is the a of cell i+1, so the signal is continuous across
// integer boundaries, and the ease curve has zero slope at f=0 and f=1, so
// no creases appear there either.
//
// fract is v − floor(v), never a truncating fractional part: it lands in
// [0, 1) for negative v too, and is clamped so the float32 result cannot
// round up to 1.
//
// ✨ Pluggable strategies:
//   - Lattice — the per-cell pseudo-random value. SineHash (default, above)
//     or MixHash (integer avalanche mixer, better distribution).
//   - Sampler — the full x→value mapping. Value (value noise over any
//     Lattice), Perlin (gradient noise, github.com/aquilax/go-perlin) and
//     Simplex (OpenSimplex, github.com/ojrac/opensimplex-go). The gradient
//     samplers use seed as a second coordinate and normalize into [0, 1),
//     so every sampler keeps the (x, seed) → value contract.
//
// Guarantees:
//   - same (x, seed) always yields the same value
//   - Sample, Value and the lattices never allocate; all samplers are safe
//     for concurrent use
//   - NaN x propagates to a NaN sample
package noise
