// SPDX-License-Identifier: MIT

package kmeans

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spkmeans/matrix"
)

const opRefine = "kmeans.Refine"

// Refine runs Lloyd iterations from the given initial centroids.
// MAIN DESCRIPTION:
//   - Alternates assignment (nearest centroid) and update (mean of members)
//     until every centroid moves less than Epsilon or MaxIterations passes ran.
//
// Implementation:
//   - Stage 1: Validate inputs (non-nil, equal dimension d, 1 ≤ k ≤ n) and copy rows.
//   - Stage 2: Assign each vector to the centroid at minimal Euclidean distance;
//     ties go to the lowest cluster index.
//   - Stage 3: Replace each centroid by the mean of its members. A cluster with no
//     members keeps its previous centroid and counts as settled.
//   - Stage 4: Recompute labels against the final centroids.
//
// Errors:
//   - ErrOptionViolation, ErrInvalidK.
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
//
// Determinism:
//   - Fixed loop orders; no randomness.
//
// Complexity:
//   - Time O(I·n·k·d), Space O(n + k·d).
func Refine(centroids, vectors matrix.Matrix, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", opRefine, o.err)
	}

	cs, xs, err := loadInputs(centroids, vectors)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRefine, err)
	}

	k, n, d := len(cs), len(xs), len(xs[0])
	labels := make([]int, n)
	sums := make([][]float64, k)
	for c := range sums {
		sums[c] = make([]float64, d)
	}
	sizes := make([]int, k)

	res := &Result{}
	var (
		pass, i, c, j   int
		shift, maxShift float64
		empty           int
		settled         bool
	)
	for pass = 1; pass <= o.MaxIterations; pass++ {
		for i = 0; i < n; i++ {
			labels[i] = nearest(cs, xs[i])
		}

		for c = 0; c < k; c++ {
			sizes[c] = 0
			for j = 0; j < d; j++ {
				sums[c][j] = 0
			}
		}
		for i = 0; i < n; i++ {
			c = labels[i]
			sizes[c]++
			for j = 0; j < d; j++ {
				sums[c][j] += xs[i][j]
			}
		}

		settled, maxShift, empty = true, 0, 0
		for c = 0; c < k; c++ {
			if sizes[c] == 0 {
				empty++
				continue
			}
			for j = 0; j < d; j++ {
				sums[c][j] /= float64(sizes[c])
			}
			shift = math.Sqrt(squaredDistance(sums[c], cs[c]))
			if shift >= o.Epsilon {
				settled = false
			}
			if shift > maxShift {
				maxShift = shift
			}
			copy(cs[c], sums[c])
		}

		res.Iterations = pass
		if o.Observer != nil {
			o.Observer(Iteration{Iteration: pass, MaxShift: maxShift, Empty: empty})
		}
		if settled {
			res.Converged = true
			break
		}
	}

	for i = 0; i < n; i++ {
		labels[i] = nearest(cs, xs[i])
	}
	for c = 0; c < k; c++ {
		sizes[c] = 0
	}
	for _, c = range labels {
		sizes[c]++
	}

	res.Labels = labels
	res.Clusters = make([]Cluster, k)
	for c = 0; c < k; c++ {
		res.Clusters[c] = Cluster{Centroid: cs[c], Size: sizes[c]}
	}

	return res, nil
}

// Assign labels every vector with the index of its nearest centroid.
// Ties go to the lowest index.
// Complexity: O(n·k·d).
func Assign(centroids, vectors matrix.Matrix) ([]int, error) {
	cs, xs, err := loadInputs(centroids, vectors)
	if err != nil {
		return nil, fmt.Errorf("kmeans.Assign: %w", err)
	}
	labels := make([]int, len(xs))
	for i, x := range xs {
		labels[i] = nearest(cs, x)
	}

	return labels, nil
}

// nearest returns the index of the closest centroid; strict < keeps the lowest on ties.
func nearest(cs [][]float64, x []float64) int {
	best, bestDist := 0, math.Inf(1)
	var dist float64
	for c := range cs {
		dist = squaredDistance(cs[c], x)
		if dist < bestDist {
			best, bestDist = c, dist
		}
	}

	return best
}

func squaredDistance(a, b []float64) float64 {
	// lengths are validated once by loadInputs
	d, _ := matrix.SquaredDistance(a, b)

	return d
}

// loadInputs validates the operands and copies their rows.
func loadInputs(centroids, vectors matrix.Matrix) ([][]float64, [][]float64, error) {
	if err := matrix.ValidateNotNil(centroids); err != nil {
		return nil, nil, err
	}
	if err := matrix.ValidateNotNil(vectors); err != nil {
		return nil, nil, err
	}
	if centroids.Cols() != vectors.Cols() {
		return nil, nil, fmt.Errorf("centroid dimension %d, vector dimension %d: %w",
			centroids.Cols(), vectors.Cols(), matrix.ErrDimensionMismatch)
	}
	if k, n := centroids.Rows(), vectors.Rows(); k < 1 || k > n {
		return nil, nil, fmt.Errorf("k=%d with n=%d: %w", k, n, ErrInvalidK)
	}
	for _, m := range []matrix.Matrix{centroids, vectors} {
		if err := matrix.ValidateFinite(m); err != nil {
			return nil, nil, err
		}
	}

	return rowsOf(centroids), rowsOf(vectors), nil
}

// rowsOf copies the rows of an already validated matrix.
func rowsOf(m matrix.Matrix) [][]float64 {
	if d, ok := m.(*matrix.Dense); ok {
		return d.RowSlices()
	}
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j], _ = m.At(i, j)
		}
	}

	return out
}
