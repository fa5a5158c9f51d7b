package termview_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/motionkit/field"
	"github.com/katalvlaran/motionkit/termview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)

	return s
}

func newFrame(t *testing.T, time float32) termview.Frame {
	t.Helper()
	terrain, err := field.NewTerrain(field.DefaultTerrainSize, 20)
	require.NoError(t, err)
	terrain.Update(time, false)

	particles, err := field.NewParticles(32)
	require.NoError(t, err)
	require.NoError(t, particles.Update(time))

	return termview.Frame{Terrain: terrain, Particles: particles, Time: time}
}

func rowText(s tcell.SimulationScreen, row, w int) string {
	var b strings.Builder
	for col := 0; col < w; col++ {
		r, _, _, _ := s.GetContent(col, row)
		b.WriteRune(r)
	}

	return b.String()
}

func TestGlyph_Ramp(t *testing.T) {
	assert.Equal(t, rune(termview.Ramp[0]), termview.Glyph(-3))
	assert.Equal(t, rune(termview.Ramp[len(termview.Ramp)-1]), termview.Glyph(3))
	assert.Equal(t, rune(termview.Ramp[0]), termview.Glyph(-100), "below range saturates")
	assert.Equal(t, rune(termview.Ramp[len(termview.Ramp)-1]), termview.Glyph(100), "above range saturates")
	assert.Equal(t, '?', termview.Glyph(float32NaN()))

	// glyphs never go down as height rises
	prev := strings.IndexRune(termview.Ramp, termview.Glyph(-3))
	for h := float32(-3); h <= 3; h += 0.25 {
		idx := strings.IndexRune(termview.Ramp, termview.Glyph(h))
		assert.GreaterOrEqual(t, idx, prev, "h=%v", h)
		prev = idx
	}
}

func TestProject(t *testing.T) {
	col, row, ok := termview.Project(0, 0, 20, 81, 21)
	require.True(t, ok)
	assert.Equal(t, 40, col)
	assert.Equal(t, 10, row)

	col, row, ok = termview.Project(-10, 10, 20, 81, 21)
	require.True(t, ok)
	assert.Equal(t, 0, col, "left edge")
	assert.Equal(t, 0, row, "+z is at the top")

	col, row, ok = termview.Project(10, -10, 20, 81, 21)
	require.True(t, ok)
	assert.Equal(t, 80, col)
	assert.Equal(t, 20, row)

	_, _, ok = termview.Project(10.5, 0, 20, 81, 21)
	assert.False(t, ok)
	_, _, ok = termview.Project(float32NaN(), 0, 20, 81, 21)
	assert.False(t, ok)
}

func TestDraw_Layers(t *testing.T) {
	const w, h = 60, 20
	s := newScreen(t, w, h)
	f := newFrame(t, 1.5)

	termview.Draw(s, f)

	// terrain fills every cell above the HUD with a ramp glyph or a particle
	for row := 0; row < h-1; row++ {
		for col := 0; col < w; col++ {
			r, _, _, _ := s.GetContent(col, row)
			ok := r == termview.ParticleGlyph || strings.ContainsRune(termview.Ramp, r)
			require.True(t, ok, "cell (%d,%d) = %q", col, row, r)
		}
	}

	// particle 0 always sits on the axis, at the plane centre
	col, row, ok := termview.Project(0, 0, f.Terrain.Size(), w, h-1)
	require.True(t, ok)
	r, _, _, _ := s.GetContent(col, row)
	assert.Equal(t, termview.ParticleGlyph, r)

	hud := rowText(s, h-1, w)
	assert.True(t, strings.HasPrefix(hud, "t=1.50 wave=full"), hud)
	assert.Contains(t, hud, "particles=32")
}

func TestDraw_HUDFastMode(t *testing.T) {
	const w, h = 80, 4
	s := newScreen(t, w, h)

	termview.Draw(s, termview.Frame{Time: 2, Fast: true, Drift: 1.25, Noise: 0.5})

	hud := rowText(s, h-1, w)
	assert.True(t, strings.HasPrefix(hud, "t=2.00 wave=fast drift=1.25 noise=0.50"), hud)
	assert.NotContains(t, hud, "particles=")
	assert.NotContains(t, hud, "h=[")
}

func TestDraw_TinyScreens(t *testing.T) {
	f := newFrame(t, 0)
	for _, sz := range [][2]int{{1, 1}, {1, 2}, {2, 2}, {3, 1}} {
		s := newScreen(t, sz[0], sz[1])
		assert.NotPanics(t, func() { termview.Draw(s, f) }, "size %v", sz)
	}
}

func TestDraw_Colored(t *testing.T) {
	const w, h = 30, 10
	s := newScreen(t, w, h)
	termview.Draw(s, newFrame(t, 0.25))

	_, _, style, _ := s.GetContent(w/3, 1)
	fg, _, _ := style.Decompose()
	assert.True(t, fg.IsRGB(), "terrain cells carry true colour")
}

func float32NaN() float32 {
	var zero float32
	return zero / zero
}
