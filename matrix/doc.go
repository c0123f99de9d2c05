// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra substrate of the spectral
// clustering pipeline.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Kernels (Add, Sub, Mul, Transpose, MatVec, Diagonal) that always
//     return a freshly allocated *Dense and never mutate their operands.
//   - Constructors (NewZeros, NewIdentity, NewDiagonal, NewDenseFromRows) and
//     compositions such as RowSums.
//   - Validators (ValidateSymmetric, ValidateSquareNonNil, ...) shared by the
//     eigensolver and the graph builders.
//
// Every kernel has a *Dense fast path over the flat buffer and a generic
// At/Set fallback for any other Matrix implementation. Errors are package
// sentinels wrapped with an operation tag; match them with errors.Is.
package matrix
