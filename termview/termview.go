// Package termview draws a motionkit frame onto a tcell screen: the terrain
// seen from above, shaded by height and coloured by the palette, the spiral
// particles projected onto it, and a one-line HUD at the bottom.
package termview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/katalvlaran/motionkit/field"
	"github.com/katalvlaran/motionkit/palette"
	"github.com/katalvlaran/motionkit/tuning"
	"github.com/lucasb-eyer/go-colorful"
)

// Ramp holds the height glyphs from lowest to highest.
const Ramp = " .:-=+*#%@"

// ParticleGlyph marks a particle cell.
const ParticleGlyph = '●'

// Frame is everything Draw needs for one frame.
type Frame struct {
	Terrain   *field.Terrain   // nil skips the terrain layer
	Particles *field.Particles // nil skips the particle layer
	Time      float32
	Fast      bool    // annotates the HUD only
	Drift     float64 // fast-wave DTW drift, shown in fast mode
	Noise     float32 // kernel noise sample for the HUD
}

// Draw renders f onto s and returns without calling Show. The last screen
// row holds the HUD; screens smaller than 1×2 are left untouched.
func Draw(s tcell.Screen, f Frame) {
	w, h := s.Size()
	if w < 1 || h < 2 {
		return
	}
	rows := h - 1
	s.Clear()

	if f.Terrain != nil {
		drawTerrain(s, f.Terrain, w, rows)
	}
	if f.Particles != nil {
		size := field.DefaultTerrainSize
		if f.Terrain != nil {
			size = f.Terrain.Size()
		}
		drawParticles(s, f.Particles, size, w, rows)
	}
	drawHUD(s, f, w, h-1)
}

// Glyph returns the Ramp glyph for a height in [-WaveBound, WaveBound].
// Out-of-range heights saturate; NaN renders as '?'.
func Glyph(height float32) rune {
	if height != height {
		return '?'
	}
	bound := tuning.WaveBound
	u := (height + bound) / (2 * bound)
	idx := int(u * float32(len(Ramp)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(Ramp) {
		idx = len(Ramp) - 1
	}

	return rune(Ramp[idx])
}

// Project maps plane coordinates (x, z) of a size×size plane centred on the
// origin to a screen cell in a w×rows area, +z at the top. ok is false when
// the point falls outside the area.
func Project(x, z, size float32, w, rows int) (col, row int, ok bool) {
	half := size / 2
	u := (x + half) / size
	v := (half - z) / size
	if !(u >= 0 && u <= 1 && v >= 0 && v <= 1) {
		return 0, 0, false
	}

	return int(u*float32(w-1) + 0.5), int(v*float32(rows-1) + 0.5), true
}

// toTcell converts a colour to a tcell true colour.
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()

	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func drawTerrain(s tcell.Screen, t *field.Terrain, w, rows int) {
	n := t.Segments() + 1
	heights := t.Heights()

	var col, row int
	for row = 0; row < rows; row++ {
		gr := nearest(row, rows, n)
		for col = 0; col < w; col++ {
			gc := nearest(col, w, n)
			hgt, err := heights.At(gr, gc)
			if err != nil {
				continue
			}
			x, z, _ := t.VertexXZ(gr, gc)
			style := tcell.StyleDefault.Foreground(toTcell(palette.RGB(x, hgt, z)))
			s.SetContent(col, row, Glyph(hgt), nil, style)
		}
	}
}

func drawParticles(s tcell.Screen, p *field.Particles, size float32, w, rows int) {
	var i int32
	for i = 0; i < p.Count(); i++ {
		pos, err := p.Position(i)
		if err != nil {
			continue
		}
		col, row, ok := Project(pos.X(), pos.Z(), size, w, rows)
		if !ok {
			continue
		}
		c, _ := p.Color(i)
		s.SetContent(col, row, ParticleGlyph, nil, tcell.StyleDefault.Foreground(toTcell(c)).Bold(true))
	}
}

func drawHUD(s tcell.Screen, f Frame, w, row int) {
	line := fmt.Sprintf("t=%.2f wave=full", f.Time)
	if f.Fast {
		line = fmt.Sprintf("t=%.2f wave=fast drift=%.2f", f.Time, f.Drift)
	}
	line += fmt.Sprintf(" noise=%.2f", f.Noise)
	if f.Terrain != nil {
		if st, err := field.Summarize(f.Terrain.Heights()); err == nil {
			line += fmt.Sprintf(" h=[%.2f,%.2f]", st.Min, st.Max)
		}
	}
	if f.Particles != nil {
		line += fmt.Sprintf(" particles=%d", f.Particles.Count())
	}
	line += "  q:quit"

	style := tcell.StyleDefault.Foreground(toTcell(field.Tint(mgl32.Vec3{}, f.Time))).Reverse(true)
	col := 0
	for _, r := range line {
		if col >= w {
			break
		}
		s.SetContent(col, row, r, nil, style)
		col++
	}
}

// nearest maps screen index i of an extent-long axis to the nearest of n
// grid vertices.
func nearest(i, extent, n int) int {
	if extent <= 1 || n <= 1 {
		return 0
	}

	return int(float32(i)/float32(extent-1)*float32(n-1) + 0.5)
}
