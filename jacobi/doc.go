// SPDX-License-Identifier: MIT

// Package jacobi computes the full eigendecomposition of a real symmetric
// matrix with the cyclic max-pivot Jacobi method.
//
// What:
//
//   - Solve returns every eigenvalue of A together with an orthonormal matrix V
//     whose column c is the eigenvector paired with Eigenvalues[c], so that
//     A·V = V·diag(λ) and VᵀV = I up to floating-point error.
//
// How:
//
//  1. Pivot: scan the strict upper triangle for the entry of largest magnitude.
//     Ties keep the first one met in row-major order (earlier row, then earlier
//     column). A zero pivot means A is already diagonal and the solver stops.
//  2. Rotation: θ = (a_jj − a_ii)/(2·a_ij), t = sign(θ)/(|θ| + √(θ²+1)) with
//     sign(0) = +1, c = 1/√(t²+1), s = t·c.
//  3. Update: A′ = PᵀAP touches only rows and columns i, j; a′_ij is written as
//     an exact zero. V′ = V·P touches only columns i and j.
//  4. Convergence: off(A) = Σ_{p<q} 2·a_pq². The solver stops once a rotation
//     decreases off(A) by no more than Epsilon, or after MaxRotations rotations.
//
// Eigenvalues that land in (−ZeroTolerance, 0], including −0.0, are reported
// as +0.0 and their eigenvector column is negated, so printed output never
// shows "-0.0000".
//
// Running out of rotations is not an error: Result.Converged reports whether
// the stopping rule fired, and the best approximation is returned either way.
//
// Complexity:
//
//   - Time O(R·n²) for R rotations (pivot scan and off-diagonal sum dominate),
//     Space O(n²): two alternating buffers for A and one for V.
//
// Determinism:
//
//   - Fixed scan order and no randomness: equal inputs give bitwise-equal output.
package jacobi
