// Package tuning is the single source of truth for every numeric literal the
// motionkit kernel uses: spatial frequencies, temporal rates, amplitudes and
// the lattice hash constant.
//
// Every kernel package (wave, spiral, palette, noise) reads its constants from
// here, so visual tuning stays consistent: changing a frequency in one place
// changes it for the full and the fast wave, for every spiral coordinate and
// for every colour channel at once.
//
// The values are float32 because the kernel contract is float32 in and
// float32 out. Geometry constants that must be exact in float64 (π) are
// derived from math.Pi at compile time.
package tuning
