// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Square-only algebra built on cofactor (Laplace) expansion: Identity,
//     Determinant, Comatrix and the adjugate-based Inverse.
//
// Design:
//   - Determinant expands along row 0 recursively: Θ(n!) time, recursion depth n.
//     No pivoting and no elimination shortcut; the result is the exact textbook
//     sum evaluated in a fixed order.
//   - Working copies are plain [][]float64 grids; minor() produces a fresh grid
//     with one row and one column removed, preserving the order of the rest.
//   - Base cases: 2×2 is ad−bc; 1×1 is its single element; the empty 0×0 minor
//     (reached only as the cofactor of a 1×1) has determinant 1.
//   - Inverse = Transpose(Comatrix(A)) / det(A). A is singular iff |det| <= tol,
//     with tol = 0 by default, i.e. det == 0.0 exactly.
//
// AI-Hints:
//   - n! grows fast: 10×10 already needs ~3.6M leaf products. Use an LU-based
//     routine (see converters → gonum) for anything but small fixed sizes.

package matrix

import "math"

// Identity returns the n×n identity matrix (1 on the diagonal, 0 elsewhere).
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Identity(n int) (*Dense, error) {
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		res.data[i*n+i] = 1
	}

	return res, nil
}

// Determinant computes det(m) by recursive cofactor expansion along the first row.
// Implementation:
//   - Stage 1: ValidateSquareNotNil.
//   - Stage 2: materialize the rows once, then recurse with det().
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time Θ(n!), Space O(n²) per recursion level, depth n.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det(dm.ToRows()), nil
}

// Comatrix returns the cofactor matrix C with C[i,j] = (−1)^(i+j)·det(minor(i,j)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time Θ(n²·(n−1)!), Space O(n²).
func Comatrix(m Matrix) (*Dense, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return nil, matrixErrorf(opComatrix, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opComatrix, err)
	}

	return comatrix(dm), nil
}

// comatrix is the unchecked kernel behind Comatrix and Inverse.
func comatrix(dm *Dense) *Dense {
	n := dm.r
	grid := dm.ToRows()
	res := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = cofactorSign(i+j) * det(minor(grid, i, j))
		}
	}

	return res
}

// Inverse computes A⁻¹ = adj(A)/det(A), where adj(A) = Transpose(Comatrix(A)).
// Implementation:
//   - Stage 1: ValidateSquareNotNil; resolve options.
//   - Stage 2: det(A); fail with ErrSingular when |det| <= SingularTolerance.
//   - Stage 3: comatrix → transpose → divide every entry by det.
//
// Behavior highlights:
//   - With default options the singularity test is the literal det == 0.0;
//     near-singular inputs with a tiny non-zero det are inverted (and blow up).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time Θ(n²·(n−1)!), Space O(n²).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	d := det(dm.ToRows())
	if math.Abs(d) <= o.singularTol {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	adj, err := Transpose(comatrix(dm))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for idx := range adj.data {
		adj.data[idx] /= d
	}

	return adj, nil
}

// det evaluates the determinant of a square grid by Laplace expansion on row 0.
// The grid is read only. len(grid) == 0 yields 1 (empty product).
func det(grid [][]float64) float64 {
	switch len(grid) {
	case 0:
		return 1
	case 1:
		return grid[0][0]
	case 2:
		return grid[0][0]*grid[1][1] - grid[0][1]*grid[1][0]
	}

	sum := ZeroSum
	for j := range grid[0] {
		sum += cofactorSign(j) * grid[0][j] * det(minor(grid, 0, j))
	}

	return sum
}

// minor returns a fresh grid equal to grid without the given row and column.
// Relative order of the remaining entries is preserved. Callers pass in-range
// coordinates; grid must be rectangular with at least one row and column.
// Complexity: O(r*c).
func minor(grid [][]float64, row, col int) [][]float64 {
	out := make([][]float64, 0, len(grid)-1)
	for i, src := range grid {
		if i == row {
			continue
		}
		dst := make([]float64, 0, len(src)-1)
		dst = append(dst, src[:col]...)
		dst = append(dst, src[col+1:]...)
		out = append(out, dst)
	}

	return out
}

// cofactorSign returns (−1)^k.
func cofactorSign(k int) float64 {
	if k%2 == 0 {
		return 1
	}
	return -1
}
