// Package linalg is a small dense linear-algebra toolkit built on exact
// cofactor algebra.
//
// 🚀 What is linalg?
//
//	A pure-Go library that brings together:
//		• Dense float64 matrices: Add, Sub, Negate, Scale, Div, Mul, Transpose
//		• Square algebra: Identity, Determinant, Comatrix, Inverse
//		• Generic numeric vectors with elementwise arithmetic
//		• Converters to and from gonum's mat package
//
// ✨ Why choose linalg?
//
//   - Value semantics: every operation returns a new matrix or vector
//   - Fail-fast shape checks with sentinel errors (errors.Is friendly)
//   - Deterministic loops, no hidden state, no goroutines
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/     — Dense type, elementwise ops, product, determinant & inverse
//	vector/     — generic Vector[T] with Add/Sub/Mul/Div
//	converters/ — matrix.Matrix ⇄ mat.Dense, vector.Vector ⇄ mat.VecDense
//
// Cofactor expansion is Θ(n!): use it for small systems and reach for gonum
// (via converters) for anything larger.
//
//	go get github.com/katalvlaran/linalg/matrix
package linalg
