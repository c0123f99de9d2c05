// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/spkmeans/jacobi"
	"github.com/katalvlaran/spkmeans/matrix"
)

const opEmbed = "spectral.Embed"

// Embedding holds the k eigenvectors of smallest eigenvalue.
type Embedding struct {
	// K is the embedding dimension.
	K int
	// U is k×n: row r is the eigenvector of the r-th smallest eigenvalue.
	U *matrix.Dense
	// Eigenvalues are the k eigenvalues paired with the rows of U, ascending.
	Eigenvalues []float64
}

// Points returns the n×k transpose of U: row i is the embedded image of input point i.
func (e *Embedding) Points() (*matrix.Dense, error) {
	return matrix.Transpose(e.U)
}

// eigenpair is the sort record of Embed.
type eigenpair struct {
	value  float64
	column int
}

// Embed selects the k eigenvectors of smallest eigenvalue from res.
//
// Implementation:
//   - Stage 1: Validate res and 1 ≤ k ≤ n.
//   - Stage 2: Stable-sort (eigenvalue, column) pairs ascending; equal eigenvalues
//     keep their column order.
//   - Stage 3: Copy the first k eigenvector columns into the rows of U.
//
// Errors: ErrNilResult, ErrInvalidK.
// Complexity: O(n log n + k·n).
func Embed(res *jacobi.Result, k int) (*Embedding, error) {
	if res == nil || res.Eigenvectors == nil {
		return nil, fmt.Errorf("%s: %w", opEmbed, ErrNilResult)
	}
	n := len(res.Eigenvalues)
	if n == 0 || res.Eigenvectors.Rows() != n || res.Eigenvectors.Cols() != n {
		return nil, fmt.Errorf("%s: %d eigenvalues for a %dx%d basis: %w", opEmbed,
			n, res.Eigenvectors.Rows(), res.Eigenvectors.Cols(), matrix.ErrDimensionMismatch)
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("%s: k=%d with n=%d: %w", opEmbed, k, n, ErrInvalidK)
	}

	pairs := make([]eigenpair, n)
	for c, v := range res.Eigenvalues {
		pairs[c] = eigenpair{value: v, column: c}
	}
	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].value < pairs[b].value })

	u, err := matrix.NewDense(k, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEmbed, err)
	}
	values := make([]float64, k)

	var (
		r, i int
		v    float64
	)
	for r = 0; r < k; r++ {
		values[r] = pairs[r].value
		for i = 0; i < n; i++ {
			if v, err = res.Eigenvectors.At(i, pairs[r].column); err != nil {
				return nil, fmt.Errorf("%s: %w", opEmbed, err)
			}
			if err = u.Set(r, i, v); err != nil {
				return nil, fmt.Errorf("%s: %w", opEmbed, err)
			}
		}
	}

	return &Embedding{K: k, U: u, Eigenvalues: values}, nil
}
