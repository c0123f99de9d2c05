// SPDX-License-Identifier: MIT
// Package jacobi_test contains shared fixtures and property assertions
// for the eigensolver tests.

package jacobi_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/spkmeans/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix to force the interface (non-*Dense) input path.
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

// randomSymmetric builds an n×n symmetric matrix with U(-1,1) entries.
func randomSymmetric(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = rng.Float64()*2 - 1
			require.NoError(t, m.Set(i, j, v))
			require.NoError(t, m.Set(j, i, v))
		}
	}

	return m
}

func sortedCopy(v []float64) []float64 {
	out := append([]float64(nil), v...)
	sort.Float64s(out)

	return out
}

// propOrthonormal asserts QᵀQ ≈ I within delta.
func propOrthonormal(t *testing.T, Q matrix.Matrix, delta float64) {
	t.Helper()

	Qt, err := matrix.Transpose(Q)
	require.NoError(t, err)
	QtQ, err := matrix.Mul(Qt, Q)
	require.NoError(t, err)

	n := Q.Rows()
	var i, j int
	var want float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			require.InDeltaf(t, want, mustAt(t, QtQ, i, j), delta, "QᵀQ at [%d,%d]", i, j)
		}
	}
}

// propReconstruction asserts A ≈ Q*diag(vals)*Qᵀ within delta.
func propReconstruction(t *testing.T, A, Q matrix.Matrix, vals []float64, delta float64) {
	t.Helper()

	D, err := matrix.NewDiagonal(vals)
	require.NoError(t, err)
	QD, err := matrix.Mul(Q, D)
	require.NoError(t, err)
	Qt, err := matrix.Transpose(Q)
	require.NoError(t, err)
	QDQt, err := matrix.Mul(QD, Qt)
	require.NoError(t, err)

	ok, err := matrix.AllClose(QDQt, A, 0, delta)
	require.NoError(t, err)
	require.Truef(t, ok, "reconstruction off by more than %g:\n%v\nwant\n%v", delta, QDQt, A)
}

// propEigenEquation asserts A·v_c ≈ λ_c·v_c column by column.
func propEigenEquation(t *testing.T, A, Q matrix.Matrix, vals []float64, delta float64) {
	t.Helper()

	AQ, err := matrix.Mul(A, Q)
	require.NoError(t, err)

	n := A.Rows()
	var i, c int
	for c = 0; c < n; c++ {
		for i = 0; i < n; i++ {
			require.InDeltaf(t, vals[c]*mustAt(t, Q, i, c), mustAt(t, AQ, i, c), delta,
				"A·v at row %d, column %d", i, c)
		}
	}
}

func columnNorm(t *testing.T, Q matrix.Matrix, c int) float64 {
	t.Helper()
	var s, v float64
	for i := 0; i < Q.Rows(); i++ {
		v = mustAt(t, Q, i, c)
		s += v * v
	}

	return math.Sqrt(s)
}
