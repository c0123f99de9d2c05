// SPDX-License-Identifier: MIT

package kmeans

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/spkmeans/matrix"
)

const opSeed = "kmeans.SeedPlusPlus"

// SeedPlusPlus chooses k initial centroids among the rows of vectors (k-means++).
//
// Implementation:
//   - Stage 1: Draw the first index uniformly.
//   - Stage 2: For every further seed, D(x) is the Euclidean distance from x to its
//     nearest chosen seed; index x is drawn with probability D(x)/ΣD.
//     When ΣD = 0 (all remaining points coincide with seeds) the draw is uniform.
//
// Returns the chosen row indices in draw order and the k×d matrix of those rows.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf, ErrInvalidK.
// Determinism: fully determined by seed (seed 0 maps to a fixed default).
// Complexity: O(k·n·d).
func SeedPlusPlus(vectors matrix.Matrix, k int, seed int64) ([]int, *matrix.Dense, error) {
	if err := matrix.ValidateFinite(vectors); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSeed, err)
	}
	n := vectors.Rows()
	if k < 1 || k > n {
		return nil, nil, fmt.Errorf("%s: k=%d with n=%d: %w", opSeed, k, n, ErrInvalidK)
	}
	xs := rowsOf(vectors)
	rng := rngFromSeed(seed)

	chosen := make([]int, 0, k)
	chosen = append(chosen, rng.Intn(n))

	// dist[i] tracks D(x_i) against all seeds chosen so far.
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	for len(chosen) < k {
		last := xs[chosen[len(chosen)-1]]
		total := 0.0
		for i := range xs {
			if d := math.Sqrt(squaredDistance(xs[i], last)); d < dist[i] {
				dist[i] = d
			}
			total += dist[i]
		}
		chosen = append(chosen, drawWeighted(rng, dist, total))
	}

	rows := make([][]float64, k)
	for i, idx := range chosen {
		rows[i] = xs[idx]
	}
	seeds, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSeed, err)
	}

	return chosen, seeds, nil
}

// drawWeighted samples an index with probability weights[i]/total.
// A zero total degrades to a uniform draw.
func drawWeighted(rng *rand.Rand, weights []float64, total float64) int {
	if total <= 0 {
		return rng.Intn(len(weights))
	}
	target := rng.Float64() * total
	acc := 0.0
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		last = i
		if acc > target {
			return i
		}
	}

	// rounding left target at or above the accumulated sum
	return last
}
