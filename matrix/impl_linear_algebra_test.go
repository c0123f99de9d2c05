// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spkmeans/matrix"
	"github.com/stretchr/testify/require"
)

// TestHelpers_InterfaceHiding_Fallback checks that wrapping in hide{}
// (which hides the concrete type) forces the interface fallback path without panicking
// and produces the same numbers as the *Dense fast path.
func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	A := RandFilledDense(t, 5, 4, 11)
	B := RandFilledDense(t, 5, 4, 12)
	C := RandFilledDense(t, 4, 3, 13)

	fastSum, err := matrix.Add(A, B)
	require.NoError(t, err)
	slowSum, err := matrix.Add(hide{A}, hide{B})
	require.NoError(t, err)
	CompareClose(t, fastSum, slowSum, 0, 0)

	fastProd, err := matrix.Mul(A, C)
	require.NoError(t, err)
	slowProd, err := matrix.Mul(hide{A}, hide{C})
	require.NoError(t, err)
	CompareClose(t, fastProd, slowProd, 1e-12, 1e-12)

	fastT, err := matrix.Transpose(A)
	require.NoError(t, err)
	slowT, err := matrix.Transpose(hide{A})
	require.NoError(t, err)
	CompareClose(t, fastT, slowT, 0, 0)
}

// ---------- Add / Sub ----------

func TestAdd_FastPath_6x6_Correctness(t *testing.T) {
	t.Parallel()

	const rows, cols = 6, 6
	var i, j int

	A := MustDense(t, rows, cols)
	B := MustDense(t, rows, cols)

	// A[i,j] = i+j; B[i,j] = 10 - (i+j)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			MustSet(t, A, i, j, float64(i+j))
			MustSet(t, B, i, j, float64(10-(i+j)))
		}
	}

	S, err := matrix.Add(A, B)
	require.NoError(t, err)

	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			require.Equalf(t, 10.0, MustAt(t, S, i, j), "at [%d,%d]", i, j)
		}
	}
}

func TestSub_Fallback_5x3_Correctness(t *testing.T) {
	t.Parallel()

	const rows, cols = 5, 3
	var i, j int

	Araw := MustDense(t, rows, cols)
	Braw := MustDense(t, rows, cols)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			MustSet(t, Araw, i, j, float64(2*i+j))
			MustSet(t, Braw, i, j, float64(i-3*j))
		}
	}

	D, err := matrix.Sub(hide{Araw}, hide{Braw})
	require.NoError(t, err)

	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			require.Equalf(t, float64(i+4*j), MustAt(t, D, i, j), "at [%d,%d]", i, j)
		}
	}
}

func TestAddSub_Errors(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 3, 4)
	B := MustDense(t, 4, 3)

	_, err := matrix.Add(A, B)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(A, nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Sub(typedNil, A)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSub_DoesNotMutateOperands guards the fresh-result contract.
func TestSub_DoesNotMutateOperands(t *testing.T) {
	A := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	B := NewFilledDense(t, 2, 2, []float64{4, 3, 2, 1})

	D, err := matrix.Sub(A, B)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-3, -1}, {1, 3}}, D)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, A)
	CompareExact(t, [][]float64{{4, 3}, {2, 1}}, B)
}

// ---------- Mul / Transpose ----------

func TestMul_Known(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	B := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	C, err := matrix.Mul(A, B)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, C)

	_, err = matrix.Mul(A, A)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	A := RandFilledDense(t, 3, 7, 5)
	T1, err := matrix.Transpose(A)
	require.NoError(t, err)
	require.Equal(t, 7, T1.Rows())
	require.Equal(t, 3, T1.Cols())

	T2, err := matrix.Transpose(T1)
	require.NoError(t, err)
	CompareClose(t, A, T2, 0, 0)
}

// ---------- MatVec / Diagonal / RowSums ----------

func TestMatVec(t *testing.T) {
	A := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	x := []float64{1, 0, -1}

	y, err := matrix.MatVec(A, x)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	y2, err := matrix.MatVec(hide{A}, x)
	require.NoError(t, err)
	require.Equal(t, y, y2)

	_, err = matrix.MatVec(A, []float64{1})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(A, nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDiagonal(t *testing.T) {
	A := NewFilledDense(t, 3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})

	d, err := matrix.Diagonal(A)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 5, 9}, d)

	d2, err := matrix.Diagonal(hide{A})
	require.NoError(t, err)
	require.Equal(t, d, d2)

	_, err = matrix.Diagonal(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
}

func TestRowSumsAndNewDiagonal(t *testing.T) {
	W := NewFilledDense(t, 3, 3, []float64{
		0, 1, 2,
		1, 0, 3,
		2, 3, 0,
	})

	sums, err := matrix.RowSums(W)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4, 5}, sums)

	D, err := matrix.NewDiagonal(sums)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{3, 0, 0}, {0, 4, 0}, {0, 0, 5}}, D)

	_, err = matrix.NewDiagonal(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.NewDiagonal([]float64{})
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	A := RandFilledDense(t, 3, 3, 42)
	P, err := matrix.Mul(A, I)
	require.NoError(t, err)
	CompareClose(t, A, P, 0, 0)
}

// ---------- AllClose / distances ----------

func TestAllClose(t *testing.T) {
	A := NewFilledDense(t, 1, 2, []float64{1, 2})
	B := NewFilledDense(t, 1, 2, []float64{1 + 1e-10, 2})

	ok, err := matrix.AllClose(A, B, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(A, B, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(A, B, math.NaN(), 0)
	AssertErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(A, MustDense(t, 2, 1), 0, 0)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDistance(t *testing.T) {
	sq, err := matrix.SquaredDistance([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 25.0, sq)

	d, err := matrix.Distance([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 5.0, d)

	_, err = matrix.Distance([]float64{1}, []float64{1, 2})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.SquaredDistance(nil, []float64{1})
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}
