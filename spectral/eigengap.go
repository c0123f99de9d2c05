// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/spkmeans/matrix"
)

const opSelectK = "spectral.SelectK"

// SelectK picks the number of clusters with the eigengap heuristic.
//
// Implementation:
//   - Stage 1: Sort a copy of the eigenvalues ascending; the input is untouched.
//   - Stage 2: δ_i = |λ_{i+1} − λ_i| for i in [0, n−2].
//   - Stage 3: Scan δ_0 … δ_{⌊n/2⌋−1} keeping the first strict maximum; k = index + 1.
//
// Behavior highlights:
//   - n = 1 (no gaps) and an all-zero gap prefix both give k = 1.
//   - The result always lies in [1, max(1, ⌊n/2⌋)].
//
// Errors: ErrEmptyInput, matrix.ErrNaNInf for a non-finite eigenvalue.
// Complexity: O(n log n).
func SelectK(eigenvalues []float64) (int, error) {
	n := len(eigenvalues)
	if n == 0 {
		return 0, fmt.Errorf("%s: %w", opSelectK, ErrEmptyInput)
	}
	for i, v := range eigenvalues {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%s: eigenvalue %d: %w", opSelectK, i, matrix.ErrNaNInf)
		}
	}

	sorted := make([]float64, n)
	copy(sorted, eigenvalues)
	sort.Float64s(sorted)

	half := n / 2
	best, bestIdx := 0.0, 0
	var gap float64
	for i := 0; i < half; i++ {
		gap = math.Abs(sorted[i+1] - sorted[i])
		if gap > best {
			best, bestIdx = gap, i
		}
	}

	return bestIdx + 1, nil
}
