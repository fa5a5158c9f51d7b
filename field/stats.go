// SPDX-License-Identifier: MIT
// Package: field
//
// stats.go — single-pass summary statistics over a Grid.
//
// Determinism:
//   - Fixed row-major traversal; float64 accumulation.
//   - NaN cells are counted and skipped, so a NaN in the field is visible
//     (Stats.NaN > 0) without poisoning Min/Max/Mean.

package field

import "math"

// Stats summarizes the finite-or-infinite (non-NaN) cells of a grid.
type Stats struct {
	Min, Max float32
	Mean     float64
	NaN      int // number of NaN cells skipped
}

// Summarize computes Stats over g.
// Errors: ErrNilGrid.
// Complexity: O(r*c) time, O(1) space.
func Summarize(g *Grid) (Stats, error) {
	if g == nil {
		return Stats{}, fieldErrorf("Summarize", ErrNilGrid)
	}

	st := Stats{Min: float32(math.Inf(1)), Max: float32(math.Inf(-1))}
	var sum float64
	var n int
	for _, v := range g.data {
		if v != v {
			st.NaN++
			continue
		}
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
		sum += float64(v)
		n++
	}
	if n > 0 {
		st.Mean = sum / float64(n)
	} else {
		st.Min, st.Max, st.Mean = 0, 0, math.NaN()
	}

	return st, nil
}
