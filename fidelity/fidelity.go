package fidelity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/motionkit/wave"
)

// Distance computes the DTW distance between a and b.
//
// Algorithm (two rows):
//  1. prev[0] = 0, prev[j] = +∞ for j ≥ 1.
//  2. For i = 1..n, cur[0] = +∞; for j = 1..m inside the band:
//     cur[j] = |a[i−1] − b[j−1]| + min(prev[j]+p, cur[j−1]+p, prev[j−1])
//     and +∞ outside it.
//  3. distance = row n, column m.
//
// Errors: ErrEmptyInput, ErrBadInput.
// Complexity: O(n·m) time, O(m) memory.
func Distance(a, b []float64, opts Options) (float64, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, fmt.Errorf("Distance: %w", ErrEmptyInput)
	}
	if err := opts.validate(); err != nil {
		return 0, fmt.Errorf("Distance: %w", err)
	}

	window := opts.Window
	if window < 0 {
		window = math.MaxInt32
	}
	penalty := opts.SlopePenalty
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	cur := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	var i, j int
	for i = 1; i <= n; i++ {
		cur[0] = inf
		for j = 1; j <= m; j++ {
			if abs(i-j) > window {
				cur[j] = inf
				continue
			}
			best := min3(prev[j]+penalty, cur[j-1]+penalty, prev[j-1])
			cur[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
		prev, cur = cur, prev
	}

	return prev[m], nil
}

// Profile samples h along x ∈ [from, to] at fixed z and time, n points
// inclusive of both ends (n = 1 samples from only).
// Errors: ErrEmptyInput for n < 1, ErrBadInput for a non-finite range.
func Profile(h HeightFunc, z, time, from, to float32, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("Profile: %w", ErrEmptyInput)
	}
	if !finite(from) || !finite(to) {
		return nil, fmt.Errorf("Profile: %w", ErrBadInput)
	}

	out := make([]float64, n)
	step := float32(0)
	if n > 1 {
		step = (to - from) / float32(n-1)
	}
	for i := range out {
		out[i] = float64(h(from+float32(i)*step, z, time))
	}

	return out, nil
}

// Compare returns the DTW distance between the wave.Height and the
// wave.FastHeight profiles along x ∈ [from, to] at (z, time).
func Compare(z, time, from, to float32, n int, opts Options) (float64, error) {
	full, err := Profile(wave.Height, z, time, from, to, n)
	if err != nil {
		return 0, fmt.Errorf("Compare: %w", err)
	}
	fast, err := Profile(wave.FastHeight, z, time, from, to, n)
	if err != nil {
		return 0, fmt.Errorf("Compare: %w", err)
	}

	return Distance(full, fast, opts)
}

func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}

	return c
}
