package field

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/katalvlaran/motionkit/palette"
	"github.com/katalvlaran/motionkit/spiral"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultParticleCount is the particle count of the reference scene.
const DefaultParticleCount = 150

// stride is the number of float32 values per particle in each buffer.
const stride = 3

// Particles is a spiral particle cloud with flat vertex buffers.
//
//	Positions[3i:3i+3] = (spiral.X, spiral.Y, spiral.Z)(i, Count, t)
//	Colors[3i:3i+3]    = (palette.R(x), palette.G(y), palette.B(z))
type Particles struct {
	count     int32
	Positions []float32
	Colors    []float32
}

// NewParticles allocates buffers for count particles.
// Errors: ErrBadCount for count ≤ 0.
func NewParticles(count int32) (*Particles, error) {
	if count <= 0 {
		return nil, fieldErrorf("NewParticles", ErrBadCount)
	}

	return &Particles{
		count:     count,
		Positions: make([]float32, stride*int(count)),
		Colors:    make([]float32, stride*int(count)),
	}, nil
}

// Count returns the number of particles.
func (p *Particles) Count() int32 { return p.count }

// Update refills both buffers for time.
// Complexity: O(Count), no allocation.
func (p *Particles) Update(time float32) error {
	var i int32
	for i = 0; i < p.count; i++ {
		pos, err := spiral.Point(i, p.count, time)
		if err != nil {
			return fieldErrorf("Particles.Update", err)
		}

		o := stride * int(i)
		p.Positions[o], p.Positions[o+1], p.Positions[o+2] = pos[0], pos[1], pos[2]
		p.Colors[o] = palette.R(pos[0])
		p.Colors[o+1] = palette.G(pos[1])
		p.Colors[o+2] = palette.B(pos[2])
	}

	return nil
}

// Position returns particle i as a vector.
func (p *Particles) Position(i int32) (mgl32.Vec3, error) {
	if i < 0 || i >= p.count {
		return mgl32.Vec3{}, fmt.Errorf("Particles.Position(%d): %w", i, ErrOutOfRange)
	}
	o := stride * int(i)

	return mgl32.Vec3{p.Positions[o], p.Positions[o+1], p.Positions[o+2]}, nil
}

// Color returns particle i's colour.
func (p *Particles) Color(i int32) (colorful.Color, error) {
	if i < 0 || i >= p.count {
		return colorful.Color{}, fmt.Errorf("Particles.Color(%d): %w", i, ErrOutOfRange)
	}
	o := stride * int(i)

	return colorful.Color{
		R: float64(p.Colors[o]),
		G: float64(p.Colors[o+1]),
		B: float64(p.Colors[o+2]),
	}, nil
}
