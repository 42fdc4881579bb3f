// SPDX-License-Identifier: MIT

// Package vector provides a generic fixed-length numeric vector with
// elementwise arithmetic.
//
// A Vector[T] holds a length chosen at construction and never changes it.
// Add, Sub, Mul and Div operate position by position and return a new
// vector; operands of different lengths fail with ErrDimensionMismatch.
//
// Float element types follow IEEE rules for division by zero. Integer
// element types panic on division by zero, as the Go runtime does.
//
//	a := vector.FromSlice([]int{1, 2, 3})
//	b := vector.FromSlice([]int{4, 5, 6})
//	s, _ := vector.Add(a, b) // [ 5 7 9 ]
package vector
