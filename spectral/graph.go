// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spkmeans/matrix"
)

const (
	opWAM       = "spectral.WeightedAdjacency"
	opDDG       = "spectral.DiagonalDegree"
	opLaplacian = "spectral.Laplacian"
)

// WeightedAdjacency builds the Gaussian affinity graph of the rows of points:
//
//	w[i][j] = exp(-‖x_i − x_j‖² / 2),  w[i][i] = 0.
//
// Implementation:
//   - Stage 1: Copy the rows out of points once (O(n·m)).
//   - Stage 2: Fill the strict upper triangle and mirror it, so w is exactly symmetric.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf for non-finite coordinates.
// Complexity: Time O(n²·m), Space O(n²).
func WeightedAdjacency(points matrix.Matrix) (*matrix.Dense, error) {
	rows, err := rowsOf(points)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opWAM, err)
	}
	n := len(rows)
	w, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opWAM, err)
	}

	var (
		i, j int
		dist float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if dist, err = matrix.SquaredDistance(rows[i], rows[j]); err != nil {
				return nil, fmt.Errorf("%s: %w", opWAM, err)
			}
			if err = setSymmetric(w, i, j, math.Exp(-dist/2)); err != nil {
				return nil, fmt.Errorf("%s: %w", opWAM, err)
			}
		}
	}

	return w, nil
}

// DiagonalDegree returns D with d[i][i] = Σ_j w[i][j] and zeros elsewhere.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n²).
func DiagonalDegree(w matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(w); err != nil {
		return nil, fmt.Errorf("%s: %w", opDDG, err)
	}
	degrees, err := matrix.RowSums(w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDDG, err)
	}
	d, err := matrix.NewDiagonal(degrees)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDDG, err)
	}

	return d, nil
}

// Laplacian returns the unnormalized graph Laplacian L = D − W.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
// Complexity: O(n²).
func Laplacian(d, w matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(d); err != nil {
		return nil, fmt.Errorf("%s: %w", opLaplacian, err)
	}
	if err := matrix.ValidateSquareNonNil(w); err != nil {
		return nil, fmt.Errorf("%s: %w", opLaplacian, err)
	}
	l, err := matrix.Sub(d, w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLaplacian, err)
	}

	return l, nil
}

func setSymmetric(m *matrix.Dense, i, j int, v float64) error {
	if err := m.Set(i, j, v); err != nil {
		return err
	}

	return m.Set(j, i, v)
}

// rowsOf copies every row of m into its own slice.
func rowsOf(m matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*matrix.Dense); ok {
		return d.RowSlices(), nil
	}

	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
