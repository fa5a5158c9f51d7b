// Package motionkit is a set of small, pure motion kernels for procedural
// animation: a layered sine wave for terrain height, a rising spiral for
// particle placement, a periodic RGB palette and 1D value noise.
//
// 🚀 What is motionkit?
//
//	Stateless functions of (coordinates, time) that a host evaluates every
//	frame, either directly or through a kernel handle:
//		• Wave terrain: full two-layer wave and a cheaper single-layer variant
//		• Spiral particles: X/Z on a 4π sweep, bobbing Y
//		• Palette: three phase-shifted sine channels in [0.5, 1]
//		• Noise: smoothstep value noise, plus Perlin and simplex samplers
//
// ✨ Why motionkit?
//
//   - Deterministic – same inputs, same float32 output, on every call
//   - Concurrency-free – no state after construction, safe to share
//   - Host-friendly – frame buffers, a terminal preview and WAV export
//
// Packages:
//
//	tuning/    — every shared constant of the kernels
//	wave/      — Height, FastHeight
//	spiral/    — X, Y, Z, Point, Radius
//	palette/   — R, G, B, RGB
//	noise/     — Sample, lattices and pluggable samplers
//	kernel/    — the Kernel handle with a time offset and noise sampler
//	field/     — terrain and particle frame buffers, Grid statistics
//	fidelity/  — DTW distance between full and fast wave profiles
//	sonify/    — beep streamers over the kernels, WAV export
//	termview/  — tcell rendering of a frame
//
// Quick example:
//
//	k := kernel.New(kernel.WithTimeOffset(1.5))
//	h := k.Wave(x, z, t)           // terrain height
//	px, _ := k.SpiralX(i, n, t)    // particle i of n
//	r := k.ColorR(px)              // its red channel
//
// Run the preview with:
//
//	go run ./cmd/motionkit-preview -fps 30
package motionkit
