// SPDX-License-Identifier: MIT
package converters

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
	"gonum.org/v1/gonum/mat"
)

// VectorToGonum copies v into a gonum column vector, converting elements to float64.
// gonum has no zero-length VecDense constructor, so an empty v yields ErrEmpty.
func VectorToGonum[T vector.Number](v *vector.Vector[T]) (*mat.VecDense, error) {
	if v == nil {
		return nil, fmt.Errorf("VectorToGonum: %w", ErrNilInput)
	}
	n := v.Len()
	if n == 0 {
		return nil, fmt.Errorf("VectorToGonum: %w", ErrEmpty)
	}

	data := make([]float64, n)
	for i, x := range v.ToSlice() {
		data[i] = float64(x)
	}

	return mat.NewVecDense(n, data), nil
}

// VectorFromGonum copies a gonum vector into a new float64 Vector.
func VectorFromGonum(g mat.Vector) (*vector.Vector[float64], error) {
	if g == nil {
		return nil, fmt.Errorf("VectorFromGonum: %w", ErrNilInput)
	}
	if d, ok := g.(*mat.VecDense); ok && d == nil {
		return nil, fmt.Errorf("VectorFromGonum: %w", ErrNilInput)
	}

	n := g.Len()
	out, err := vector.New[float64](n)
	if err != nil {
		return nil, fmt.Errorf("VectorFromGonum: %w", err)
	}
	for i := 0; i < n; i++ {
		out.Set(i, g.AtVec(i))
	}

	return out, nil
}
