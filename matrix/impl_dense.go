// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Offer the factories of the value model: zero-fill, uniform-fill, explicit grid.
//   - Guarantee safety at the At/Set surface (errors, never panics) while keeping
//     Row(i) as the single unchecked, fatal-on-misuse indexer.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense/NewFilled/NewFromRows: O(r*c); At/Set/Row: O(1); Clone/ToRows/Resize: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

// Method tags used in error wrappers and panic values.
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxResize = "Resize"
	ctxRows   = "NewFromRows"
)

// ---------- Formatting literals ----------

const (
	_fmtCell     = " %g "
	_fmtRowClose = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0 for every reachable value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Every algebra function in this package returns a freshly allocated *Dense;
// operands are never mutated, so a *Dense behaves as a value unless the caller
// writes through Set or Row.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every element set to v.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = v
	}

	return m, nil
}

// NewFromRows builds a Dense from a caller-supplied grid, copying every value.
// MAIN DESCRIPTION:
//   - Explicit-grid factory; the grid is taken by value (later mutation of the
//     caller's slices is never observed by the matrix).
//
// Implementation:
//   - Stage 1: ValidateGrid (non-empty, rectangular).
//   - Stage 2: allocate r×c and copy row by row.
//
// Errors:
//   - ErrBadShape for empty or ragged grids.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(grid [][]float64) (*Dense, error) {
	rows, cols, err := ValidateGrid(grid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRows, err)
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRows, err)
	}
	for i := 0; i < rows; i++ {
		copy(m.data[i*cols:(i+1)*cols], grid[i])
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of elements (Rows*Cols).
// Complexity: O(1).
func (m *Dense) Len() int { return m.r * m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Any float64 is accepted, including NaN and ±Inf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns row i as a slice aliasing the matrix storage, so that
// m.Row(i)[j] reads and m.Row(i)[j] = v writes element (i, j).
// MAIN DESCRIPTION:
//   - Unchecked indexer: an out-of-range row is a programming error and panics
//     with an error wrapping ErrOutOfRange. Column indexing is plain slice
//     indexing and panics the usual way.
//
// Notes:
//   - The returned slice has capacity == Cols, so append never spills into the next row.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		panic(fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange))
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi]
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant used internally.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// ToRows materializes the contents as a freshly allocated [][]float64 in
// row-major order. The result never aliases the matrix storage.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Resize returns a rows×cols matrix holding the overlapping top-left
// min(r,rows)×min(c,cols) block of m; every other cell is zero.
// MAIN DESCRIPTION:
//   - Silent truncation or zero-padding; this is the documented behavior, not an error.
//
// Errors:
//   - ErrInvalidDimensions only when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense) Resize(rows, cols int) (*Dense, error) {
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, denseErrorf(ctxResize, rows, cols, err)
	}
	h, w := min(m.r, rows), min(m.c, cols)
	for i := 0; i < h; i++ {
		copy(out.data[i*cols:i*cols+w], m.data[i*m.c:i*m.c+w])
	}

	return out, nil
}

// String renders the matrix as Rows lines of Cols space-padded values.
// Fixed traversal order; intended for logs and debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, _fmtCell, m.data[base+j])
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// toDense returns m itself when it is a *Dense, otherwise a Dense copy read
// through the interface in i→j order. The result must be treated as read-only.
// Errors: ErrNilMatrix, ErrInvalidDimensions (foreign 0-sized matrix), At failures.
// Complexity: O(1) fast path, O(r*c) generic path.
func toDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
