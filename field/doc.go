// Package field fills the per-frame buffers a host renderer uploads: a
// terrain height grid, a particle cloud (positions + colours), and a cube
// tint. It is the loop a host would otherwise write around the kernel.
//
// 🚀 Buffers:
//
//	Grid      — row-major float32 grid, rows×cols (bounds-checked At/Set)
//	Terrain   — square plane of Size world units split into Segments;
//	            (Segments+1)² vertices whose heights come from wave.Height
//	            (or wave.FastHeight) every frame
//	Particles — Count particles on the spiral; flat xyz Positions and rgb
//	            Colors, 3 float32 each, ready for a vertex buffer
//	Tint      — colour of a body at pos, drifting with time
//
// Defaults mirror a typical scene: a 20×20 plane with 40 segments and 150
// particles.
//
// Unlike the kernel packages, constructors here allocate once; Update calls
// reuse the buffers and do not allocate.
//
// Errors:
//   - ErrBadShape   — non-positive grid shape or segment count
//   - ErrBadSize    — non-positive or non-finite plane size
//   - ErrBadCount   — non-positive particle count
//   - ErrOutOfRange — row/col/particle index outside the buffer
//   - ErrNilGrid    — nil *Grid passed to Summarize
package field
