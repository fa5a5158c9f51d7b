// SPDX-License-Identifier: MIT
// Package: motionkit/kernel
//
// options.go — functional options for the kernel handle.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless input (non-finite
//     offset, nil sampler). The operations themselves never panic.
//   • Later options override earlier ones.

package kernel

import (
	"math"

	"github.com/katalvlaran/motionkit/noise"
)

// DefaultTimeOffset is the offset of a handle built without WithTimeOffset.
const DefaultTimeOffset float32 = 0.0

// Option customizes a Kernel at construction.
type Option func(*Kernel)

// WithTimeOffset sets the global phase shift applied by Shifted.
// Panics if offset is NaN or ±Inf.
func WithTimeOffset(offset float32) Option {
	if math.IsNaN(float64(offset)) || math.IsInf(float64(offset), 0) {
		panic("kernel: WithTimeOffset(non-finite)")
	}
	return func(k *Kernel) {
		k.timeOffset = offset
	}
}

// WithSampler replaces the noise strategy used by Noise.
// Panics on nil.
func WithSampler(s noise.Sampler) Option {
	if s == nil {
		panic("kernel: WithSampler(nil)")
	}
	return func(k *Kernel) {
		k.sampler = s
	}
}
