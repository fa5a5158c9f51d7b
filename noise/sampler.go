package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Sampler maps (x, seed) to a value in [0, 1). It is the strategy the
// kernel handle calls for its Noise operation.
type Sampler interface {
	Sample(x, seed float32) float32
}

// Value is value noise over a Lattice. The zero Value uses SineHash and is
// identical to the package-level Sample.
type Value struct {
	Lattice Lattice
}

// Sample implements Sampler.
func (v Value) Sample(x, seed float32) float32 {
	if v.Lattice == nil {
		return sampleValue(SineHash{}, x, seed)
	}

	return sampleValue(v.Lattice, x, seed)
}

// Default gradient-noise parameters: amplitude falloff 2, frequency gain 2,
// three octaves.
const (
	DefaultPerlinAlpha   = 2.0
	DefaultPerlinBeta    = 2.0
	DefaultPerlinOctaves = int32(3)
)

// Perlin is gradient noise from github.com/aquilax/go-perlin, sampled on the
// 2D plane (x, seed) so each seed is an independent 1D slice.
type Perlin struct {
	gen *perlin.Perlin
}

// NewPerlin builds a Perlin sampler.
//   - alpha: amplitude divisor per octave (> 0)
//   - beta:  frequency multiplier per octave (> 0)
//   - octaves: number of octaves (≥ 1)
//   - base: permutation seed of the generator itself
func NewPerlin(alpha, beta float64, octaves int32, base int64) (*Perlin, error) {
	if octaves < 1 {
		return nil, noiseErrorf("NewPerlin", ErrBadOctaves)
	}
	if !positiveFinite(alpha) || !positiveFinite(beta) {
		return nil, noiseErrorf("NewPerlin", ErrBadParam)
	}

	return &Perlin{gen: perlin.NewPerlin(alpha, beta, octaves, base)}, nil
}

// Sample implements Sampler. Raw output in about [-1, 1] is mapped to
// [0, 1) and clamped.
func (p *Perlin) Sample(x, seed float32) float32 {
	n := p.gen.Noise2D(float64(x), float64(seed))

	return unit32((n + 1) / 2)
}

// Simplex is OpenSimplex noise from github.com/ojrac/opensimplex-go, in its
// normalized float32 form, sampled on the plane (x, seed).
type Simplex struct {
	gen opensimplex.Noise32
}

// NewSimplex builds a Simplex sampler with the given permutation seed.
func NewSimplex(base int64) *Simplex {
	return &Simplex{gen: opensimplex.NewNormalized32(base)}
}

// Sample implements Sampler.
func (s *Simplex) Sample(x, seed float32) float32 {
	return unit32(float64(s.gen.Eval2(x, seed)))
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
