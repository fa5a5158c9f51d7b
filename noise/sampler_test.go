package noise_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/motionkit/noise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValue_ZeroMatchesSample checks the zero Value sampler is Sample.
func TestValue_ZeroMatchesSample(t *testing.T) {
	var s noise.Sampler = noise.Value{}
	for x := float32(-4); x < 4; x += 0.37 {
		assert.Equal(t, noise.Sample(x, 9), s.Sample(x, 9))
	}
}

func TestMixHash_Range(t *testing.T) {
	var l noise.MixHash
	for seed := float32(0); seed < 8; seed++ {
		for cell := float32(-500); cell < 500; cell++ {
			v := l.Value(cell, seed)
			require.GreaterOrEqual(t, v, float32(0))
			require.Less(t, v, float32(1))
		}
	}
}

// TestValue_MixHashContinuity checks value noise over any lattice keeps the
// shared-endpoint continuity.
func TestValue_MixHashContinuity(t *testing.T) {
	s := noise.Value{Lattice: noise.MixHash{}}
	for i := float32(-3); i < 3; i++ {
		below := float64(s.Sample(i+1-1e-4, 11))
		at := float64(s.Sample(i+1, 11))
		assert.InDelta(t, at, below, 1e-4, "boundary %g", i+1)
	}
}

func TestNewPerlin_Validation(t *testing.T) {
	_, err := noise.NewPerlin(2, 2, 0, 1)
	assert.ErrorIs(t, err, noise.ErrBadOctaves)

	_, err = noise.NewPerlin(0, 2, 3, 1)
	assert.ErrorIs(t, err, noise.ErrBadParam)

	_, err = noise.NewPerlin(2, math.Inf(1), 3, 1)
	assert.ErrorIs(t, err, noise.ErrBadParam)

	_, err = noise.NewPerlin(math.NaN(), 2, 3, 1)
	assert.ErrorIs(t, err, noise.ErrBadParam)
}

// TestGradientSamplers_Contract checks the Perlin and Simplex samplers keep
// the [0,1) range and determinism of the Sampler contract.
func TestGradientSamplers_Contract(t *testing.T) {
	p, err := noise.NewPerlin(noise.DefaultPerlinAlpha, noise.DefaultPerlinBeta, noise.DefaultPerlinOctaves, 99)
	require.NoError(t, err)

	samplers := map[string]noise.Sampler{
		"perlin":  p,
		"simplex": noise.NewSimplex(99),
	}
	for name, s := range samplers {
		t.Run(name, func(t *testing.T) {
			for seed := float32(0); seed < 4; seed++ {
				for x := float32(-10); x < 10; x += 0.21 {
					v := s.Sample(x, seed)
					require.GreaterOrEqual(t, v, float32(0), "x=%g seed=%g", x, seed)
					require.Less(t, v, float32(1), "x=%g seed=%g", x, seed)
					require.Equal(t, v, s.Sample(x, seed))
				}
			}
		})
	}
}

// TestGradientSamplers_Smooth checks small steps in x give small changes.
func TestGradientSamplers_Smooth(t *testing.T) {
	p, err := noise.NewPerlin(noise.DefaultPerlinAlpha, noise.DefaultPerlinBeta, noise.DefaultPerlinOctaves, 5)
	require.NoError(t, err)

	for _, s := range []noise.Sampler{p, noise.NewSimplex(5)} {
		for x := float32(0); x < 5; x += 0.1 {
			d := math.Abs(float64(s.Sample(x+1e-3, 2) - s.Sample(x, 2)))
			assert.Less(t, d, 0.05, "x=%g", x)
		}
	}
}
