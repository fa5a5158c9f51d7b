package field

import (
	"fmt"
	"strings"
)

// Grid is a row-major grid of float32 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Grid struct {
	r, c int
	data []float32
}

// NewGrid creates an r×c Grid initialized to zeros.
// Stage 1 (Validate): rows and cols > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(r*c) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fieldErrorf("NewGrid", ErrBadShape)
	}

	return &Grid{r: rows, c: cols, data: make([]float32, rows*cols)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.r }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.c }

// Data returns the row-major backing slice (len == Rows*Cols). It aliases
// the grid; hosts upload it directly.
func (g *Grid) Data() []float32 { return g.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (g *Grid) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}

	return row*g.c + col, nil
}

// At returns the element at (row, col).
// Complexity: O(1).
func (g *Grid) At(row, col int) (float32, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return g.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (g *Grid) Set(row, col int, v float32) error {
	idx, err := g.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Clone returns a deep copy.
// Complexity: O(r*c) time and memory.
func (g *Grid) Clone() *Grid {
	data := make([]float32, len(g.data))
	copy(data, g.data)

	return &Grid{r: g.r, c: g.c, data: data}
}

// String implements fmt.Stringer, one bracketed row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for i := 0; i < g.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < g.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", g.data[i*g.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
