// SPDX-License-Identifier: MIT

// Package spectral implements spectral clustering on top of the jacobi
// eigensolver and the kmeans refiner.
//
// Pipeline:
//
//	points (n×m)
//	  → WeightedAdjacency   w_ij = exp(-‖x_i − x_j‖²/2), w_ii = 0
//	  → DiagonalDegree      d_ii = Σ_j w_ij
//	  → Laplacian           L = D − W
//	  → jacobi.Solve        eigenpairs of L
//	  → SelectK             eigengap heuristic (only when k ≤ 0)
//	  → Embed               k eigenvectors of smallest eigenvalue (U, k×n)
//	  → kmeans.SeedPlusPlus + kmeans.Refine on the rows of Uᵀ
//
// Reduce stops after Embed; Cluster runs the whole chain. Every stage also
// exists as a standalone function and returns a freshly allocated matrix.
//
// Errors are the sentinels of this package (ErrEmptyInput, ErrInvalidK,
// ErrNilResult) or of the matrix, jacobi and kmeans packages, wrapped with
// the failing operation. Match them with errors.Is.
package spectral
