// Package matrix provides dense square tables indexed by integer positions.
// Square is a row-major n×n table storing elements in a flat slice for
// performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// squareErrorf wraps an underlying error with Square method context.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}

// Square is a row-major n×n table of T values.
// n is the order, and data holds n*n elements in row-major order.
type Square[T comparable] struct {
	n    int // order (rows == cols)
	data []T // flat backing storage, length == n*n
}

// NewSquare creates an n×n table with every cell set to fill.
// Stage 1 (Validate): ensure n >= 0 (an empty 0×0 table is legal).
// Stage 2 (Prepare): allocate and fill the flat backing slice.
// Complexity: O(n²) time and memory.
func NewSquare[T comparable](n int, fill T) (*Square[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("NewSquare(%d): %w", n, ErrBadShape)
	}
	data := make([]T, n*n)
	var zero T
	if fill != zero {
		for i := range data {
			data[i] = fill
		}
	}

	return &Square[T]{n: n, data: data}, nil
}

// Order returns the number of rows (and columns).
// Complexity: O(1).
func (m *Square[T]) Order() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Square[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, squareErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Square[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Square[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a live view of row i. Writes through the view modify m.
// Hot loops should fetch rows once and index them directly.
// Complexity: O(1).
func (m *Square[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.n {
		return nil, squareErrorf("Row", i, 0, ErrOutOfRange)
	}
	base := i * m.n

	return m.data[base : base+m.n : base+m.n], nil
}

// Clone returns a deep copy of the table.
// Complexity: O(n²) time and memory.
func (m *Square[T]) Clone() *Square[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Square[T]{n: m.n, data: copyData}
}

// Equal reports whether both tables have the same order and cells.
// A nil table only equals another nil table.
func (m *Square[T]) Equal(other *Square[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²) for string construction.
func (m *Square[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.n; j++ {
			fmt.Fprintf(&sb, "%v", m.data[i*m.n+j])
			if j < m.n-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
