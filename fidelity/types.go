package fidelity

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates an empty profile or a sample count below 1.
	ErrEmptyInput = errors.New("fidelity: input sequences must be non-empty")

	// ErrBadInput indicates invalid options: Window < −1, negative or NaN
	// SlopePenalty, or a non-finite profile range.
	ErrBadInput = errors.New("fidelity: invalid options or range")
)

// Options configures the DTW comparison.
type Options struct {
	// Window is the Sakoe–Chiba half-width; −1 disables the band.
	Window int
	// SlopePenalty is added to every insertion or deletion step.
	SlopePenalty float64
}

// DefaultOptions returns an unconstrained, unpenalized comparison.
func DefaultOptions() Options {
	return Options{Window: -1, SlopePenalty: 0}
}

// validate reports ErrBadInput for meaningless options.
func (o Options) validate() error {
	if o.Window < -1 {
		return fmt.Errorf("Window=%d: %w", o.Window, ErrBadInput)
	}
	if o.SlopePenalty < 0 || o.SlopePenalty != o.SlopePenalty {
		return fmt.Errorf("SlopePenalty=%g: %w", o.SlopePenalty, ErrBadInput)
	}

	return nil
}

// HeightFunc is the shape of wave.Height and wave.FastHeight.
type HeightFunc func(x, z, time float32) float32
