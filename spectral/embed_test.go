// SPDX-License-Identifier: MIT

package spectral_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spkmeans/jacobi"
	"github.com/katalvlaran/spkmeans/matrix"
	"github.com/katalvlaran/spkmeans/spectral"
)

// basis returns a result whose column c is e_c scaled by c+1, so columns are recognisable.
func basis(t *testing.T, values []float64) *jacobi.Result {
	t.Helper()
	n := len(values)
	v, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for c := 0; c < n; c++ {
		require.NoError(t, v.Set(c, c, float64(c+1)))
	}

	return &jacobi.Result{Eigenvalues: values, Eigenvectors: v, Converged: true}
}

func TestEmbedOrdersByEigenvalue(t *testing.T) {
	emb, err := spectral.Embed(basis(t, []float64{3, 1, 2}), 2)
	require.NoError(t, err)

	require.Equal(t, 2, emb.K)
	require.Equal(t, []float64{1, 2}, emb.Eigenvalues)
	require.Equal(t, 2, emb.U.Rows())
	require.Equal(t, 3, emb.U.Cols())
	// row 0 is column 1 of V, row 1 is column 2
	require.Equal(t, []float64{0, 2, 0, 0, 0, 3}, emb.U.Values())

	pts, err := emb.Points()
	require.NoError(t, err)
	require.Equal(t, 3, pts.Rows())
	require.Equal(t, 2, pts.Cols())
	require.Equal(t, []float64{0, 0, 2, 0, 0, 3}, pts.Values())
}

func TestEmbedStableOnEqualEigenvalues(t *testing.T) {
	emb, err := spectral.Embed(basis(t, []float64{1, 1, 0}), 3)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 1}, emb.Eigenvalues)
	require.Equal(t, []float64{
		0, 0, 3,
		1, 0, 0,
		0, 2, 0,
	}, emb.U.Values())
}

func TestEmbedErrors(t *testing.T) {
	res := basis(t, []float64{0, 1})

	_, err := spectral.Embed(res, 0)
	require.ErrorIs(t, err, spectral.ErrInvalidK)
	_, err = spectral.Embed(res, 3)
	require.ErrorIs(t, err, spectral.ErrInvalidK)
	_, err = spectral.Embed(nil, 1)
	require.ErrorIs(t, err, spectral.ErrNilResult)

	res.Eigenvalues = []float64{0, 1, 2}
	_, err = spectral.Embed(res, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
