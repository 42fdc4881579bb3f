// SPDX-License-Identifier: MIT
package vector

// Add returns a + b elementwise.
func Add[T Number](a, b *Vector[T]) (*Vector[T], error) {
	return zipWith(opAdd, a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b elementwise.
func Sub[T Number](a, b *Vector[T]) (*Vector[T], error) {
	return zipWith(opSub, a, b, func(x, y T) T { return x - y })
}

// Mul returns the elementwise (Hadamard) product.
func Mul[T Number](a, b *Vector[T]) (*Vector[T], error) {
	return zipWith(opMul, a, b, func(x, y T) T { return x * y })
}

// Div returns a / b elementwise. Integer division by zero panics.
func Div[T Number](a, b *Vector[T]) (*Vector[T], error) {
	return zipWith(opDiv, a, b, func(x, y T) T { return x / y })
}

// zipWith validates operands and applies f position by position into a fresh vector.
func zipWith[T Number](op string, a, b *Vector[T], f func(x, y T) T) (*Vector[T], error) {
	if a == nil || b == nil {
		return nil, vectorErrorf(op, ErrNilVector)
	}
	if len(a.data) != len(b.data) {
		return nil, vectorErrorf(op, ErrDimensionMismatch)
	}

	out := &Vector[T]{data: make([]T, len(a.data))}
	for i := range a.data {
		out.data[i] = f(a.data[i], b.data[i])
	}

	return out, nil
}
