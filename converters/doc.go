// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between this module's value
// types and gonum's mat package:
//   - matrix.Matrix ⇄ *mat.Dense
//   - vector.Vector ⇄ *mat.VecDense
//
// Every conversion copies; no storage is shared between the two sides.
// Use converters to hand matrices to gonum for LU/QR/SVD factorizations, or
// to bring gonum results back into the cofactor algebra.
package converters
