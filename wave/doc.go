// Package wave synthesizes the animated height field of a terrain mesh.
//
// 🚀 What does it compute?
//
//	A scalar height for a grid point (x, z) at time t, built from two
//	phase-shifted sine/cosine products:
//
//	  wave1 = sin(0.5x + t) · cos(0.5z + t)
//	  wave2 = cos(0.3x − 0.5t) · sin(0.4z + 0.3t)
//	  h     = (wave1 + 0.5·wave2) · 2
//
// ✨ Key features:
//   - Height     — full two-term superposition, bounded in [-3, 3]
//   - FastHeight — primary term only (wave1 · 2), bounded in [-2, 2];
//     half the transcendental calls for callers that trade fidelity for speed
//   - both share the primary-term constants from package tuning, so a scene
//     may mix them without visible seams in phase or frequency
//
// ⚙️ Usage:
//
//	for i := range vertices {
//	  vertices[i].Y = wave.Height(vertices[i].X, vertices[i].Z, t)
//	}
//
// Guarantees:
//
//   - pure and deterministic; safe for concurrent use
//   - no allocation, no errors; NaN/±Inf inputs propagate to the output
//
// See fidelity.Compare for a quantitative wave vs fast-wave comparison.
package wave
