// SPDX-License-Identifier: MIT

package spectral_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spkmeans/matrix"
	"github.com/katalvlaran/spkmeans/spectral"
)

type hide struct{ matrix.Matrix }

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestTwoPointGraph(t *testing.T) {
	points := mustRows(t, [][]float64{{0.0}, {2.0}})
	e2 := math.Exp(-2)

	w, err := spectral.WeightedAdjacency(points)
	require.NoError(t, err)
	require.Equal(t, []float64{0, e2, e2, 0}, w.Values())
	require.InDelta(t, 0.1353, e2, 1e-4)

	d, err := spectral.DiagonalDegree(w)
	require.NoError(t, err)
	require.Equal(t, []float64{e2, 0, 0, e2}, d.Values())

	l, err := spectral.Laplacian(d, w)
	require.NoError(t, err)
	require.Equal(t, []float64{e2, -e2, -e2, e2}, l.Values())
}

// TestGraphInvariants checks symmetry, zero diagonal and zero Laplacian row sums.
func TestGraphInvariants(t *testing.T) {
	points := mustRows(t, [][]float64{
		{1, 2, 0.5},
		{-1, 0, 3},
		{0.2, 0.2, 0.2},
		{4, -2, 1},
		{1, 1, 1},
	})

	w, err := spectral.WeightedAdjacency(hide{points})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(w, 0))

	n := w.Rows()
	for i := 0; i < n; i++ {
		require.Zero(t, mustAt(t, w, i, i))
		for j := 0; j < n; j++ {
			v := mustAt(t, w, i, j)
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 1.0)
		}
	}

	d, err := spectral.DiagonalDegree(w)
	require.NoError(t, err)
	l, err := spectral.Laplacian(d, w)
	require.NoError(t, err)

	sums, err := matrix.RowSums(l)
	require.NoError(t, err)
	for i, s := range sums {
		require.InDeltaf(t, 0, s, 1e-12, "row %d", i)
	}
}

func TestGraphErrors(t *testing.T) {
	_, err := spectral.WeightedAdjacency(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = spectral.DiagonalDegree(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = spectral.Laplacian(nil, rect)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	sq2 := mustRows(t, [][]float64{{1, 0}, {0, 1}})
	sq3 := mustRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	_, err = spectral.Laplacian(sq2, sq3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = spectral.Laplacian(sq2, rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
