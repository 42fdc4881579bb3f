// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private cofactor kernels.
//
// Purpose:
//   - Expose UNEXPORTED helpers to matrix_test ONLY (this file is a _test.go
//     file in package matrix, so it never ships in production builds).
//   - Enable black-box tests to verify minor extraction and the recursive
//     determinant directly on [][]float64 grids.

var (
	// ExportedMinor exposes minor for white-box tests.
	ExportedMinor = minor
	// ExportedDet exposes det for white-box tests.
	ExportedDet = det
	// ExportedGatherOptions exposes gatherOptions for option tests.
	ExportedGatherOptions = gatherOptions
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly           = panicEpsilonInvalid
	PanicSingularToleranceInvalid_TestOnly = panicSingularToleranceInvalid
)
