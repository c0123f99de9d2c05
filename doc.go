// SPDX-License-Identifier: MIT

// Package spkmeans is the root of a small spectral k-means toolkit:
// Gaussian affinity graphs, a cyclic Jacobi eigensolver and k-means++
// seeded Lloyd refinement, written in pure Go with explicit error values.
//
// Packages:
//
//	matrix/        dense row-major matrix, validators, pipeline kernels
//	jacobi/        cyclic Jacobi eigensolver for real symmetric matrices
//	kmeans/        k-means++ seeding and centroid refinement
//	spectral/      WAM → DDG → Laplacian → eigenpairs → eigengap → embedding → clusters
//	cmd/spkmeans   command-line front end (goals spk, wam, ddg, gl, jacobi)
//
// Quick ASCII example, two well separated groups:
//
//	 a b          e f
//	  c            g
//
// spectral.Cluster with k = 0 picks k = 2 from the eigengap of the graph
// Laplacian and labels {a,b,c} and {e,f,g} apart.
//
//	go get github.com/katalvlaran/spkmeans
package spkmeans
