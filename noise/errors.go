package noise

import (
	"errors"
	"fmt"
)

var (
	// ErrBadOctaves indicates an octave count below 1 for a gradient sampler.
	ErrBadOctaves = errors.New("noise: octaves must be >= 1")

	// ErrBadParam indicates a non-finite or non-positive persistence/lacunarity
	// parameter for a gradient sampler.
	ErrBadParam = errors.New("noise: parameter must be finite and > 0")
)

// noiseErrorf wraps err with the constructor name.
func noiseErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
