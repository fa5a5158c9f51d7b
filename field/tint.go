package field

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/katalvlaran/motionkit/palette"
	"github.com/lucasb-eyer/go-colorful"
)

// Tint returns the colour of a body at pos drifting with time:
// (R(x+t), G(y+t), B(z+t)).
func Tint(pos mgl32.Vec3, time float32) colorful.Color {
	return palette.RGB(pos.X()+time, pos.Y()+time, pos.Z()+time)
}
