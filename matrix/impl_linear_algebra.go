// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, negation, matrix
// multiplication, transpose, scalar scaling and division. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - Declare the elementwise and product kernels of the value model.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Inputs are normalized through toDense: *Dense operands are read in place,
//     any other Matrix is copied once through At. Kernels then run on flat buffers.
//   - Results are always freshly allocated; operands are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opNegate      = "Negate"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opDiv         = "Div"
	opIdentity    = "Identity"
	opDeterminant = "Determinant"
	opComatrix    = "Comatrix"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
// Internal helper for Add/Sub to share validation, allocation and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: normalize both operands to *Dense, allocate the result.
//   - Stage 3: single flat loop 0..n-1.
//
// Notes:
//   - With sign = -1 this is a + negate(b): negation is exact in IEEE arithmetic,
//     so the fused loop yields the same bits as negating first.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B, i.e. A + Negate(B).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Negate returns -m (elementwise sign flip) as a fresh Dense.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Negate(m Matrix) (*Dense, error) {
	res, err := mapDense(m, func(v float64) float64 { return -v })
	if err != nil {
		return nil, matrixErrorf(opNegate, err)
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	res, err := mapDense(m, func(v float64) float64 { return v * alpha })
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// Div returns a new matrix whose elements are m[i,j] / alpha.
//
// Behavior highlights:
//   - alpha == 0 is NOT an error: results follow IEEE-754 (±Inf, or NaN for 0/0).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Div(m Matrix, alpha float64) (*Dense, error) {
	res, err := mapDense(m, func(v float64) float64 { return v / alpha })
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	return res, nil
}

// mapDense applies f to every element of m into a fresh Dense (flat 0..n-1 order).
func mapDense(m Matrix, f func(v float64) float64) (*Dense, error) {
	dm, err := toDense(m)
	if err != nil {
		return nil, err
	}
	res, err := NewDense(dm.r, dm.c)
	if err != nil {
		return nil, err
	}
	for idx, v := range dm.data {
		res.data[idx] = f(v)
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j over row-major strides; C[i,j] accumulates k = 0..n-1 in order.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c), C[i,j] = Σ_k A[i,k]·B[k,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order; every product is accumulated (no zero skipping), so
//     NaN/Inf propagate exactly as in the textbook sum.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Entry (j,i) of the result equals entry (i,j) of m.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := dm.r, dm.c
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and bitwise-equal values
// under float64 ==. NaN never equals NaN. Nil operands are never equal.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	return compareWith(a, b, func(x, y float64) bool { return x == y })
}

// ApproxEqual reports whether a and b have the same shape and every pair of
// elements differs by at most the configured epsilon (WithEpsilon,
// DefaultEpsilon otherwise). Equal infinities compare equal.
// Complexity: O(r*c).
func ApproxEqual(a, b Matrix, opts ...Option) bool {
	eps := gatherOptions(opts...).eps

	return compareWith(a, b, func(x, y float64) bool {
		if x == y {
			return true
		}
		return math.Abs(x-y) <= eps
	})
}

// compareWith is the shared shape check + elementwise predicate walk.
func compareWith(a, b Matrix, same func(x, y float64) bool) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, err := toDense(a)
	if err != nil {
		return false
	}
	db, err := toDense(b)
	if err != nil {
		return false
	}
	for idx := range da.data {
		if !same(da.data[idx], db.data[idx]) {
			return false
		}
	}

	return true
}
