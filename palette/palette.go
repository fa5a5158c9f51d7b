// Package palette maps spatial coordinates to colour channel intensities.
//
// Each channel is ((coord·0.3).sin() + 1)·0.5: exactly bounded in [0, 1],
// continuous, and periodic with period 20π/3 in the input coordinate. The
// three channels are independent; hosts usually feed them the x, y and z of
// a particle position to build a composite RGB triple.
package palette

import (
	"math"

	"github.com/katalvlaran/motionkit/tuning"
	"github.com/lucasb-eyer/go-colorful"
)

// Period is the input period shared by every channel (20π/3).
const Period = tuning.ColorPeriod

// R returns the red intensity for coordinate x.
func R(x float32) float32 { return channel(x) }

// G returns the green intensity for coordinate y.
func G(y float32) float32 { return channel(y) }

// B returns the blue intensity for coordinate z.
func B(z float32) float32 { return channel(z) }

// RGB assembles the three channels into a colour. Components are in [0, 1]
// for finite input, so the result is always a valid sRGB colour.
func RGB(x, y, z float32) colorful.Color {
	return colorful.Color{R: float64(R(x)), G: float64(G(y)), B: float64(B(z))}
}

// channel evaluates (sin(coord·0.3) + 1)·0.5.
func channel(coord float32) float32 {
	s := math.Sin(float64(float32(coord * tuning.ColorFreq)))

	return float32((s + float64(tuning.ColorLift)) * float64(tuning.ColorScale))
}
