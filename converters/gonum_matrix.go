// SPDX-License-Identifier: MIT
package converters

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new gonum *mat.Dense of the same shape.
//
// Errors: ErrNilInput for a nil (or typed-nil) m; element read failures are
// wrapped with their coordinates.
func ToGonum(m matrix.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w: %w", ErrNilInput, err)
	}

	rows, cols := m.Rows(), m.Cols()
	data := make([]float64, 0, rows*cols)
	if d, ok := m.(*matrix.Dense); ok {
		for i := 0; i < rows; i++ {
			data = append(data, d.Row(i)...)
		}
	} else {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				v, err := m.At(i, j)
				if err != nil {
					return nil, fmt.Errorf("ToGonum: At(%d,%d): %w", i, j, err)
				}
				data = append(data, v)
			}
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromGonum copies any gonum mat.Matrix into a new *matrix.Dense.
//
// Errors: ErrNilInput for nil g (including a nil *mat.Dense), ErrEmpty when
// g has a zero dimension.
func FromGonum(g mat.Matrix) (*matrix.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilInput)
	}
	if d, ok := g.(*mat.Dense); ok && d == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilInput)
	}

	rows, cols := g.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("FromGonum(%d×%d): %w", rows, cols, ErrEmpty)
	}

	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	for i := 0; i < rows; i++ {
		row := out.Row(i)
		for j := range row {
			row[j] = g.At(i, j)
		}
	}

	return out, nil
}
