package field_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/katalvlaran/motionkit/field"
	"github.com/katalvlaran/motionkit/palette"
	"github.com/katalvlaran/motionkit/spiral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParticles_BadCount(t *testing.T) {
	for _, n := range []int32{0, -1} {
		p, err := field.NewParticles(n)
		assert.ErrorIs(t, err, field.ErrBadCount)
		assert.Nil(t, p)
	}
}

// TestParticles_Update checks positions follow the spiral and colours follow
// the palette of the position.
func TestParticles_Update(t *testing.T) {
	p, err := field.NewParticles(field.DefaultParticleCount)
	require.NoError(t, err)
	assert.Len(t, p.Positions, 3*field.DefaultParticleCount)
	assert.Len(t, p.Colors, 3*field.DefaultParticleCount)

	const tm = float32(4.2)
	require.NoError(t, p.Update(tm))

	for i := int32(0); i < p.Count(); i++ {
		pos, err := p.Position(i)
		require.NoError(t, err)
		want, err := spiral.Point(i, p.Count(), tm)
		require.NoError(t, err)
		assert.Equal(t, want, pos, "particle %d", i)

		c, err := p.Color(i)
		require.NoError(t, err)
		assert.Equal(t, float64(palette.R(pos.X())), c.R)
		assert.Equal(t, float64(palette.G(pos.Y())), c.G)
		assert.Equal(t, float64(palette.B(pos.Z())), c.B)
		assert.True(t, c.IsValid())

		r, _ := spiral.Radius(i, p.Count())
		flat := mgl32.Vec3{pos.X(), 0, pos.Z()}
		assert.InDelta(t, float64(r), float64(flat.Len()), 1e-4)
	}
}

func TestParticles_OutOfRange(t *testing.T) {
	p, err := field.NewParticles(3)
	require.NoError(t, err)

	_, err = p.Position(3)
	assert.ErrorIs(t, err, field.ErrOutOfRange)
	_, err = p.Color(-1)
	assert.ErrorIs(t, err, field.ErrOutOfRange)
}

func TestTint(t *testing.T) {
	c := field.Tint(mgl32.Vec3{0, 1, 0}, 0)
	assert.Equal(t, float64(palette.R(0)), c.R)
	assert.Equal(t, float64(palette.G(1)), c.G)

	later := field.Tint(mgl32.Vec3{0, 1, 0}, 2)
	assert.InDelta(t, (math.Sin(0.6)+1)*0.5, later.R, 1e-6)
	assert.True(t, later.IsValid())
}
