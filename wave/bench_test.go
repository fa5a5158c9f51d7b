package wave_test

import (
	"testing"

	"github.com/katalvlaran/motionkit/wave"
)

// sink keeps the compiler from discarding benchmark results.
var sink float32

// BenchmarkHeight measures one full two-term sample.
func BenchmarkHeight(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = wave.Height(float32(i&63), float32(i&31), 1.5)
	}
}

// BenchmarkFastHeight measures the single-term variant.
func BenchmarkFastHeight(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = wave.FastHeight(float32(i&63), float32(i&31), 1.5)
	}
}
