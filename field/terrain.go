package field

import (
	"math"

	"github.com/katalvlaran/motionkit/wave"
)

// Scene defaults.
const (
	DefaultTerrainSize     float32 = 20 // world units per side
	DefaultTerrainSegments         = 40 // segments per side → 41×41 vertices
)

// Terrain is a square plane centred on the origin whose vertex heights
// follow the wave height field.
//
// Vertex (row, col) sits at
//
//	x = −Size/2 + col·step
//	z = +Size/2 − row·step,   step = Size/Segments
//
// i.e. row 0 is the far edge, the vertex order of a typical plane geometry.
type Terrain struct {
	size     float32
	segments int
	step     float32
	heights  *Grid
}

// NewTerrain allocates a (segments+1)×(segments+1) height grid.
// Errors: ErrBadSize for size ≤ 0 or non-finite, ErrBadShape for segments ≤ 0.
func NewTerrain(size float32, segments int) (*Terrain, error) {
	if !(size > 0) || math.IsInf(float64(size), 1) {
		return nil, fieldErrorf("NewTerrain", ErrBadSize)
	}
	if segments <= 0 {
		return nil, fieldErrorf("NewTerrain", ErrBadShape)
	}

	g, err := NewGrid(segments+1, segments+1)
	if err != nil {
		return nil, fieldErrorf("NewTerrain", err)
	}

	return &Terrain{
		size:     size,
		segments: segments,
		step:     size / float32(segments),
		heights:  g,
	}, nil
}

// Size returns the side length in world units.
func (t *Terrain) Size() float32 { return t.size }

// Segments returns the number of segments per side.
func (t *Terrain) Segments() int { return t.segments }

// Heights returns the height grid (aliased, refreshed by Update).
func (t *Terrain) Heights() *Grid { return t.heights }

// VertexXZ returns the plane coordinates of vertex (row, col).
func (t *Terrain) VertexXZ(row, col int) (x, z float32, err error) {
	if _, err = t.heights.indexOf("VertexXZ", row, col); err != nil {
		return 0, 0, err
	}
	x, z = t.vertexXZ(row, col)

	return x, z, nil
}

func (t *Terrain) vertexXZ(row, col int) (x, z float32) {
	half := t.size / 2

	return -half + float32(col)*t.step, half - float32(row)*t.step
}

// Update recomputes every vertex height for time. With fast set it uses
// wave.FastHeight instead of wave.Height.
// Complexity: O((Segments+1)²), no allocation.
func (t *Terrain) Update(time float32, fast bool) {
	height := wave.Height
	if fast {
		height = wave.FastHeight
	}

	n := t.segments + 1
	var row, col int
	for row = 0; row < n; row++ {
		base := row * n
		for col = 0; col < n; col++ {
			x, z := t.vertexXZ(row, col)
			t.heights.data[base+col] = height(x, z, time)
		}
	}
}
