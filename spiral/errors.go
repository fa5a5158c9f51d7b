package spiral

import (
	"errors"
	"fmt"
)

// ErrNonPositiveTotal indicates total ≤ 0 was passed where the point count
// is a divisor. The coordinate returned alongside it is always 0.
var ErrNonPositiveTotal = errors.New("spiral: total must be > 0")

// Operation names used as error context.
const (
	opX      = "X"
	opZ      = "Z"
	opPoint  = "Point"
	opRadius = "Radius"
)

// spiralErrorf wraps err with the operation name and the offending arguments.
func spiralErrorf(op string, index, total int32, err error) error {
	return fmt.Errorf("spiral.%s(%d,%d): %w", op, index, total, err)
}
