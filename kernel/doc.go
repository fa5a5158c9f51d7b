// Package kernel exposes the motionkit operation table through a single
// handle, the shape a host renderer binds to.
//
// The handle carries one piece of configuration, a time offset, reserved as
// a global phase shift for hosts that opt in via Shifted. None of the table
// operations read it:
//
//	k := kernel.New()                      // time offset 0
//	h := k.Wave(x, z, t)                   // terrain vertex height
//	px, err := k.SpiralX(i, n, t)          // particle position…
//	py := k.SpiralY(i, t)
//	pz, err := k.SpiralZ(i, n, t)
//	r, g, b := k.ColorR(px), k.ColorG(py), k.ColorB(pz)
//	v := k.Noise(x, seed)
//
// A Kernel is immutable after New, so one handle may be shared by any number
// of goroutines without locking. The zero Kernel is ready to use.
package kernel
