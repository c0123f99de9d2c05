// SPDX-License-Identifier: MIT

// Package kmeans refines cluster centroids with Lloyd's algorithm and
// provides deterministic k-means++ seeding.
//
//	idx, seeds, _ := kmeans.SeedPlusPlus(points, k, 0)
//	res, _ := kmeans.Refine(seeds, points)
//	fmt.Println(idx, res.Labels, res.Converged)
//
// Refine assigns by Euclidean distance with ties broken toward the lowest
// cluster index, keeps the previous centroid of any cluster left empty, and
// stops once every centroid moves less than Epsilon (default 0.001) or after
// MaxIterations passes (default 300). Neither function mutates its inputs.
package kmeans
