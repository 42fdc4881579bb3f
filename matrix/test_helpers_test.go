// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed unless a test is about IEEE edge cases.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the generic (non-*Dense) input path.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustIdentity RETURNS the n×n identity or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// NewFilledDense BUILDS an r×c *Dense from a row-major value list.
// Fatal if len(vals) != r*c.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, m, i, j, vals[i*c+j])
		}
	}

	return m
}

// MustFromRows WRAPS matrix.NewFromRows with a fatal on error.
func MustFromRows(t testing.TB, grid [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(grid)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// RandFilledDense RETURNS an r×c *Dense with values uniform in [-1, 1) drawn
// from a seeded source (deterministic per seed).
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// WellConditioned RETURNS MᵀM + n·I for a seeded random M: symmetric positive
// definite, so det > 0 and the cofactor inverse is numerically tame.
func WellConditioned(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	M := RandFilledDense(t, n, n, seed)
	Mt, err := matrix.Transpose(M)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	PD, err := matrix.Mul(Mt, M)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	nI, err := matrix.Scale(MustIdentity(t, n), float64(n))
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	A, err := matrix.Add(PD, nI)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	return A
}

// MustSet WRITES v at (i,j) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustAt READS (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS m equals want element by element (float64 ==).
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != len(want) {
		t.Fatalf("rows: want %d, got %d", len(want), m.Rows())
	}
	for i := range want {
		if m.Cols() != len(want[i]) {
			t.Fatalf("cols: want %d, got %d", len(want[i]), m.Cols())
		}
		for j := range want[i] {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("[%d,%d]: want %v, got %v", i, j, want[i][j], got)
			}
		}
	}
}

// CompareClose ASSERTS want and m agree within |a-b| <= atol + rtol*|b|.
func CompareClose(t testing.TB, want [][]float64, m matrix.Matrix, rtol, atol float64) {
	t.Helper()
	if m.Rows() != len(want) {
		t.Fatalf("rows: want %d, got %d", len(want), m.Rows())
	}
	for i := range want {
		if m.Cols() != len(want[i]) {
			t.Fatalf("cols: want %d, got %d", len(want[i]), m.Cols())
		}
		for j := range want[i] {
			got := MustAt(t, m, i, j)
			if math.Abs(got-want[i][j]) > atol+rtol*math.Abs(want[i][j]) {
				t.Fatalf("[%d,%d]: want %.12g, got %.12g (rtol=%.1e atol=%.1e)", i, j, want[i][j], got, rtol, atol)
			}
		}
	}
}

// AssertErrorIs FATALS unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics and returns the recovered value.
func ExpectPanic(t testing.TB, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()

	return nil
}
