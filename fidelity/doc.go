// Package fidelity measures how far wave.FastHeight drifts from wave.Height
// along a profile of the terrain, so a host can decide whether the cheaper
// single-term wave is acceptable for a scene.
//
// 🚀 How?
//
//	Both height functions are sampled along x at a fixed z and time, and
//	the two profiles are compared with Dynamic Time Warping (DTW): the
//	minimum cumulative |a[i] − b[j]| over monotone alignments. Warping
//	forgives small phase shifts between the profiles and charges only for
//	shape differences.
//
// ✨ Options:
//   - Window       — Sakoe–Chiba band |i−j| ≤ w; −1 means unlimited
//   - SlopePenalty — extra cost per non-diagonal step (≥ 0)
//
// Memory is two DP rows, O(min(N, M)).
//
// ⚙️ Usage:
//
//	opts := fidelity.DefaultOptions()
//	opts.Window = 4
//	d, err := fidelity.Compare(0, t, -10, 10, 81, opts)
package fidelity
