// SPDX-License-Identifier: MIT
package vector_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ZeroValues(t *testing.T) {
	v, err := vector.New[int](4)
	require.NoError(t, err)
	require.Equal(t, 4, v.Len())
	require.Equal(t, []int{0, 0, 0, 0}, v.ToSlice())

	empty, err := vector.New[float64](0)
	require.NoError(t, err)
	require.Zero(t, empty.Len())
	require.Equal(t, "[ ]", empty.String())

	_, err = vector.New[float32](-1)
	require.ErrorIs(t, err, vector.ErrInvalidLength)
	_, err = vector.NewFilled[int](-3, 7)
	require.ErrorIs(t, err, vector.ErrInvalidLength)
}

func TestNewFilled(t *testing.T) {
	v, err := vector.NewFilled(3, 2.5)
	require.NoError(t, err)
	require.Equal(t, []float64{2.5, 2.5, 2.5}, v.ToSlice())
}

func TestFromSlice_Copies(t *testing.T) {
	xs := []int{1, 2, 3}
	v := vector.FromSlice(xs)
	xs[0] = 100
	require.Equal(t, 1, v.At(0))

	out := v.ToSlice()
	out[1] = -2
	require.Equal(t, 2, v.At(1))
}

func TestAtSet(t *testing.T) {
	v := vector.FromSlice([]uint8{1, 2, 3})
	v.Set(2, 9)
	require.Equal(t, uint8(9), v.At(2))

	for _, i := range []int{-1, 3} {
		assertOutOfRangePanic(t, func() { _ = v.At(i) })
		assertOutOfRangePanic(t, func() { v.Set(i, 0) })
	}
}

func assertOutOfRangePanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		rec := recover()
		require.NotNil(t, rec, "expected panic")
		err, ok := rec.(error)
		require.True(t, ok, "panic value must be an error, got %T", rec)
		require.True(t, errors.Is(err, vector.ErrOutOfRange))
	}()
	fn()
}

func TestCloneEqual(t *testing.T) {
	a := vector.FromSlice([]float64{1, 2})
	b := a.Clone()
	require.True(t, vector.Equal(a, b))

	b.Set(0, 5)
	require.False(t, vector.Equal(a, b))
	require.Equal(t, 1.0, a.At(0))

	require.False(t, vector.Equal(a, vector.FromSlice([]float64{1, 2, 3})))
	require.False(t, vector.Equal(a, nil))
	require.True(t, vector.Equal[float64](nil, nil))
}

func TestArithmetic_Ints(t *testing.T) {
	a := vector.FromSlice([]int{6, 8, 10})
	b := vector.FromSlice([]int{3, 2, 5})

	tests := []struct {
		name string
		op   func(a, b *vector.Vector[int]) (*vector.Vector[int], error)
		want []int
	}{
		{"add", vector.Add[int], []int{9, 10, 15}},
		{"sub", vector.Sub[int], []int{3, 6, 5}},
		{"mul", vector.Mul[int], []int{18, 16, 50}},
		{"div", vector.Div[int], []int{2, 4, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(a, b)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.ToSlice())
		})
	}

	// operands untouched
	require.Equal(t, []int{6, 8, 10}, a.ToSlice())
	require.Equal(t, []int{3, 2, 5}, b.ToSlice())
}

func TestArithmetic_Errors(t *testing.T) {
	a := vector.FromSlice([]float64{1, 2, 3})
	b := vector.FromSlice([]float64{1, 2})

	_, err := vector.Add(a, b)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = vector.Div(b, a)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = vector.Mul(a, nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = vector.Sub(nil, a)
	require.ErrorIs(t, err, vector.ErrNilVector)
}

func TestDiv_ByZero(t *testing.T) {
	f, err := vector.Div(vector.FromSlice([]float64{1, -1, 0}), vector.FromSlice([]float64{0, 0, 0}))
	require.NoError(t, err)
	require.True(t, math.IsInf(f.At(0), 1))
	require.True(t, math.IsInf(f.At(1), -1))
	require.True(t, math.IsNaN(f.At(2)))

	a := vector.FromSlice([]int{1})
	z := vector.FromSlice([]int{0})
	assert.Panics(t, func() { _, _ = vector.Div(a, z) })
}

func TestString(t *testing.T) {
	require.Equal(t, "[ 1 2 3 ]", vector.FromSlice([]int{1, 2, 3}).String())
	require.Equal(t, "[ 0.5 -2 ]", vector.FromSlice([]float64{0.5, -2}).String())
}
