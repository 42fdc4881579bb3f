// SPDX-License-Identifier: MIT

// Package matrix offers a dense float64 matrix value type and the classic
// cofactor algebra on top of it.
//
// The matrix package provides:
//
//   - Dense, a row-major r×c grid with zero-fill (NewDense), uniform-fill
//     (NewFilled) and explicit-grid (NewFromRows) factories, Resize with
//     silent truncation/zero-padding, ToRows, and Row(i) indexing.
//   - Elementwise Add, Sub, Negate, Scale, Div and the matrix product Mul,
//     plus Transpose. Shape mismatches fail fast with ErrDimensionMismatch.
//   - Square-only Identity, Determinant (recursive Laplace expansion along
//     the first row), Comatrix and Inverse (adjugate over determinant).
//     Inverse reports ErrSingular when the determinant is exactly 0.0.
//
// Every operation returns a freshly allocated *Dense and never mutates its
// operands, so matrices behave as values. The only ways to mutate a Dense are
// Set and writes through the slice returned by Row.
//
// Cofactor expansion costs Θ(n!) and does no pivoting: it is meant for small
// matrices (transforms, geometry, teaching). Use the converters package to
// hand larger problems to gonum.
//
//	a, _ := matrix.NewFromRows([][]float64{{2, 3, 4}, {2, 1, 4}, {5, 1, 0}})
//	d, _ := matrix.Determinant(a)   // 40
//	inv, err := matrix.Inverse(a)   // errors.Is(err, matrix.ErrSingular) when d == 0
package matrix
