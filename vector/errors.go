// SPDX-License-Identifier: MIT
package vector

import "errors"

// Sentinel errors for vector operations; match with errors.Is.
var (
	// ErrInvalidLength is returned when a requested length is negative.
	ErrInvalidLength = errors.New("vector: invalid length")

	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange wraps panic values of At/Set on a bad index.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrNilVector indicates a nil *Vector operand.
	ErrNilVector = errors.New("vector: nil vector")
)
