// SPDX-License-Identifier: MIT

// Package vector - storage, factories and accessors.
//
// Complexity: New/NewFilled/FromSlice/Clone/ToSlice O(n); At/Set/Len O(1).

package vector

import (
	"fmt"
	"strings"
)

const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opDiv = "Div"
)

// vectorErrorf tags err with the failing operation.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("vector.%s: %w", op, err)
}

// Vector is a fixed-length sequence of T.
type Vector[T Number] struct {
	data []T
}

var _ fmt.Stringer = (*Vector[float64])(nil)

// New returns a zero-valued vector of length n.
func New[T Number](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("vector.New(%d): %w", n, ErrInvalidLength)
	}

	return &Vector[T]{data: make([]T, n)}, nil
}

// NewFilled returns a vector of length n with every element set to v.
func NewFilled[T Number](n int, v T) (*Vector[T], error) {
	out, err := New[T](n)
	if err != nil {
		return nil, err
	}
	for i := range out.data {
		out.data[i] = v
	}

	return out, nil
}

// FromSlice copies xs into a new vector.
func FromSlice[T Number](xs []T) *Vector[T] {
	out := &Vector[T]{data: make([]T, len(xs))}
	copy(out.data, xs)

	return out
}

// Len returns the fixed length.
func (v *Vector[T]) Len() int { return len(v.data) }

// At returns element i. Panics with a value wrapping ErrOutOfRange when i is
// outside [0, Len()).
func (v *Vector[T]) At(i int) T {
	v.mustIndex("At", i)

	return v.data[i]
}

// Set writes x at position i. Same bounds contract as At.
func (v *Vector[T]) Set(i int, x T) {
	v.mustIndex("Set", i)
	v.data[i] = x
}

func (v *Vector[T]) mustIndex(method string, i int) {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Errorf("Vector.%s(%d) len=%d: %w", method, i, len(v.data), ErrOutOfRange))
	}
}

// ToSlice returns a copy of the elements.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{data: v.ToSlice()}
}

// Equal reports exact elementwise equality. Nil vectors are equal only to nil.
func Equal[T Number](a, b *Vector[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// String renders the vector as "[ a b c ]".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, x := range v.data {
		fmt.Fprintf(&sb, "%v ", x)
	}
	sb.WriteString("]")

	return sb.String()
}
