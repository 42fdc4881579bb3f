// SPDX-License-Identifier: MIT
package converters

import "errors"

var (
	// ErrNilInput is returned when the source value is nil.
	ErrNilInput = errors.New("converters: nil input")

	// ErrEmpty is returned when the source has a zero dimension the target cannot represent.
	ErrEmpty = errors.New("converters: empty input")
)
