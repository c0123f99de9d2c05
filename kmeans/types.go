// SPDX-License-Identifier: MIT

package kmeans

import "github.com/katalvlaran/spkmeans/matrix"

// Cluster is one refined centroid and the number of vectors assigned to it.
type Cluster struct {
	Centroid []float64
	Size     int
}

// Iteration reports one assign/update pass to the observer.
type Iteration struct {
	// Iteration is the 1-based pass number.
	Iteration int
	// MaxShift is the largest Euclidean centroid movement of the pass.
	MaxShift float64
	// Empty counts clusters that received no vector and kept their centroid.
	Empty int
}

// Result is the outcome of Refine.
type Result struct {
	Clusters []Cluster
	// Labels[i] is the index of the cluster nearest to vector i under the final centroids.
	Labels     []int
	Iterations int
	// Converged is true when every centroid moved less than Epsilon in the last pass.
	Converged bool
}

// Centroids packs the cluster centroids into a k×d matrix.
func (r *Result) Centroids() (*matrix.Dense, error) {
	rows := make([][]float64, len(r.Clusters))
	for i, c := range r.Clusters {
		rows[i] = c.Centroid
	}

	return matrix.NewDenseFromRows(rows)
}
