// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Epsilon drives approximate comparisons only (ApproxEqual).
//   - SingularTolerance drives the singularity check of Inverse. The default of
//     zero keeps the literal contract: a matrix is singular iff its cofactor
//     determinant compares equal to 0.0. A positive tolerance is an explicit,
//     caller-chosen deviation for near-singular inputs.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative absolute tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultSingularTolerance is the |det| threshold at or below which Inverse
	// reports ErrSingular. Zero means exact equality with 0.0.
	DefaultSingularTolerance = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid           = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicSingularToleranceInvalid = "matrix: WithSingularTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps         float64 // >= 0; DefaultEpsilon
	singularTol float64 // >= 0; DefaultSingularTolerance
}

// Epsilon reports the resolved comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// SingularTolerance reports the resolved singularity threshold.
func (o Options) SingularTolerance() float64 { return o.singularTol }

// WithEpsilon sets the absolute tolerance used by ApproxEqual.
// Implementation:
//   - Stage 1: validate eps is finite and non-negative (panic otherwise).
//   - Stage 2: return a setter assigning eps.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer small positive eps (e.g., 1e-9) for double-precision data; cofactor
//     inverses of larger matrices accumulate rounding, so 1e-6 is a sane test band.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSingularTolerance makes Inverse treat |det| <= tol as singular.
// Implementation:
//   - Stage 1: validate tol is finite and non-negative (panic otherwise).
//   - Stage 2: return a setter assigning tol.
//
// Behavior highlights:
//   - tol == 0 (default) is bit-for-bit the exact check det == 0.0 (−0.0 included).
//
// Complexity:
//   - Time O(1), Space O(1).
func WithSingularTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicSingularToleranceInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// NewMatrixOptions resolves opts on top of the documented defaults.
// Useful for callers that want to inspect the effective policy.
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in facades.
// Implementation:
//   - Stage 1: start from Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins); nil setters are skipped.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:         DefaultEpsilon,
		singularTol: DefaultSingularTolerance,
	}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
