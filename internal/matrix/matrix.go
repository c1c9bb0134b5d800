// ABOUTME: Dense row-major float64 matrix addressed by vocabulary rank.
// ABOUTME: Flat backing slice, so row views are cheap and parallel fills need no locking.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense (rows x cols) float64 matrix in row-major order. The
// zero-row matrix is valid: an empty vocabulary yields 0 rows with a
// positive column count.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New allocates a zero-filled matrix.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 {
		return nil, fmt.Errorf("rows must be non-negative, got %d", rows)
	}
	if cols <= 0 {
		return nil, fmt.Errorf("cols must be positive, got %d", cols)
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// FromData wraps an existing row-major slice. len(data) must equal
// rows*cols.
func FromData(rows, cols int, data []float64) (*Matrix, error) {
	if rows < 0 {
		return nil, fmt.Errorf("rows must be non-negative, got %d", rows)
	}
	if cols <= 0 {
		return nil, fmt.Errorf("cols must be positive, got %d", cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("data length %d does not match %dx%d", len(data), rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the column count.
func (m *Matrix) Cols() int {
	return m.cols
}

// Row returns row i as a view into the backing slice. Panics when i is out
// of range, matching the convention of dense matrix libraries.
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("matrix: row %d out of range [0, %d)", i, m.rows))
	}
	return m.data[i*m.cols : (i+1)*m.cols]
}

// At returns the value at (i, j). Panics when out of range.
func (m *Matrix) At(i, j int) float64 {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: col %d out of range [0, %d)", j, m.cols))
	}
	return m.Row(i)[j]
}

// Data returns the backing slice in row-major order. It is shared with the
// matrix, not copied.
func (m *Matrix) Data() []float64 {
	return m.data
}

// Dense copies the matrix into a gonum dense matrix for numeric consumers.
// The empty matrix cannot be converted because gonum rejects zero-sized
// dimensions.
func (m *Matrix) Dense() (*mat.Dense, error) {
	if m.rows == 0 {
		return nil, fmt.Errorf("cannot convert empty matrix")
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return mat.NewDense(m.rows, m.cols, data), nil
}

// RowNorms returns the L2 norm of every row.
func (m *Matrix) RowNorms() []float64 {
	norms := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		norms[i] = floats.Norm(m.Row(i), 2)
	}
	return norms
}

// ZeroRows counts rows that are entirely zero.
func (m *Matrix) ZeroRows() int {
	count := 0
	for i := 0; i < m.rows; i++ {
		zero := true
		for _, v := range m.Row(i) {
			if v != 0 {
				zero = false
				break
			}
		}
		if zero {
			count++
		}
	}
	return count
}
