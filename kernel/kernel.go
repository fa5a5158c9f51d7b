package kernel

import (
	"github.com/katalvlaran/motionkit/noise"
	"github.com/katalvlaran/motionkit/palette"
	"github.com/katalvlaran/motionkit/spiral"
	"github.com/katalvlaran/motionkit/wave"
)

// Kernel is the handle a host constructs once at startup.
type Kernel struct {
	timeOffset float32
	sampler    noise.Sampler // nil → noise.Sample
}

// New returns a handle with DefaultTimeOffset and value noise over the sine
// hash, then applies opts in order.
func New(opts ...Option) *Kernel {
	k := &Kernel{timeOffset: DefaultTimeOffset}
	for _, opt := range opts {
		opt(k)
	}

	return k
}

// TimeOffset returns the configured offset.
func (k *Kernel) TimeOffset() float32 {
	if k == nil {
		return DefaultTimeOffset
	}

	return k.timeOffset
}

// Shifted returns time + TimeOffset(). Hosts that want a global phase shift
// pass Shifted(t) instead of t to the table operations.
func (k *Kernel) Shifted(time float32) float32 {
	return time + k.TimeOffset()
}

// Wave returns the full two-term terrain height (see wave.Height).
func (k *Kernel) Wave(x, z, time float32) float32 {
	return wave.Height(x, z, time)
}

// FastWave returns the single-term terrain height (see wave.FastHeight).
func (k *Kernel) FastWave(x, z, time float32) float32 {
	return wave.FastHeight(x, z, time)
}

// FastWave is the handle-free form of (*Kernel).FastWave, for hosts that
// bind it as a free function.
func FastWave(x, z, time float32) float32 {
	return wave.FastHeight(x, z, time)
}

// SpiralX returns the x coordinate of the index-th of total particles.
// Returns spiral.ErrNonPositiveTotal when total ≤ 0.
func (k *Kernel) SpiralX(index, total int32, time float32) (float32, error) {
	return spiral.X(index, total, time)
}

// SpiralY returns the vertical bob of the index-th particle.
func (k *Kernel) SpiralY(index int32, time float32) float32 {
	return spiral.Y(index, time)
}

// SpiralZ returns the z coordinate of the index-th of total particles.
// Returns spiral.ErrNonPositiveTotal when total ≤ 0.
func (k *Kernel) SpiralZ(index, total int32, time float32) (float32, error) {
	return spiral.Z(index, total, time)
}

// ColorR returns the red intensity in [0,1] for coordinate x.
func (k *Kernel) ColorR(x float32) float32 { return palette.R(x) }

// ColorG returns the green intensity in [0,1] for coordinate y.
func (k *Kernel) ColorG(y float32) float32 { return palette.G(y) }

// ColorB returns the blue intensity in [0,1] for coordinate z.
func (k *Kernel) ColorB(z float32) float32 { return palette.B(z) }

// Noise samples the configured noise strategy at (x, seed).
func (k *Kernel) Noise(x, seed float32) float32 {
	if k == nil || k.sampler == nil {
		return noise.Sample(x, seed)
	}

	return k.sampler.Sample(x, seed)
}
