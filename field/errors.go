// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// Every message is prefixed with "field: ...". Callers match with errors.Is;
// context is attached with %w at the call site.

package field

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a grid shape or segment count is ≤ 0.
	ErrBadShape = errors.New("field: invalid shape")

	// ErrBadSize is returned when a plane size is ≤ 0, NaN or ±Inf.
	ErrBadSize = errors.New("field: invalid plane size")

	// ErrBadCount is returned when a particle count is ≤ 0.
	ErrBadCount = errors.New("field: particle count must be > 0")

	// ErrOutOfRange indicates that an index is outside the buffer.
	ErrOutOfRange = errors.New("field: index out of range")

	// ErrNilGrid indicates a nil *Grid argument.
	ErrNilGrid = errors.New("field: nil grid")
)

// gridErrorf wraps err with Grid method context.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// fieldErrorf wraps err with a constructor or operation name.
func fieldErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
