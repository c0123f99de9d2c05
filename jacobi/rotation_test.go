// SPDX-License-Identifier: MIT

package jacobi_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spkmeans/jacobi"
)

func TestPivotTieBreak(t *testing.T) {
	cases := []struct {
		name string
		a    []float64
		want jacobi.Coordinate
	}{
		{"all equal magnitude keeps first", []float64{
			0, 2, -2,
			2, 0, 2,
			-2, 2, 0,
		}, jacobi.Coordinate{I: 0, J: 1}},
		{"later row loses tie", []float64{
			0, 1, 3,
			1, 0, 3,
			3, 3, 0,
		}, jacobi.Coordinate{I: 0, J: 2}},
		{"strict maximum wins", []float64{
			0, 1, 1,
			1, 0, -5,
			1, -5, 0,
		}, jacobi.Coordinate{I: 1, J: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := jacobi.Pivot(tc.a, 3)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestPivotOnDiagonalMatrixIsZero(t *testing.T) {
	_, mag := jacobi.Pivot([]float64{1, 0, 0, 2}, 2)
	require.Zero(t, mag)
}

func TestSignOfZeroIsPositive(t *testing.T) {
	require.Equal(t, 1.0, jacobi.Sign(0))
	require.Equal(t, 1.0, jacobi.Sign(math.Copysign(0, -1)))
	require.Equal(t, 1.0, jacobi.Sign(3))
	require.Equal(t, -1.0, jacobi.Sign(-1e-300))
}

func TestRotationForEqualDiagonal(t *testing.T) {
	// θ = 0 ⇒ t = +1 ⇒ a 45° rotation.
	rp := jacobi.RotationFor([]float64{1, 1, 1, 1}, 2, jacobi.Coordinate{I: 0, J: 1})
	require.Equal(t, 0.0, rp.Theta)
	require.Equal(t, 1.0, rp.T)
	require.InDelta(t, 1/math.Sqrt2, rp.C, 1e-15)
	require.InDelta(t, 1/math.Sqrt2, rp.S, 1e-15)
}

func TestRotationForNegativeTheta(t *testing.T) {
	rp := jacobi.RotationFor([]float64{3, 1, 1, 1}, 2, jacobi.Coordinate{I: 0, J: 1})
	require.Equal(t, -1.0, rp.Theta)
	require.InDelta(t, -1/(1+math.Sqrt2), rp.T, 1e-15)
	require.Less(t, rp.S, 0.0)
	require.Greater(t, rp.C, 0.0)
}

func TestFoldNegativeZeros(t *testing.T) {
	negZero := math.Copysign(0, -1)
	values := []float64{negZero, -1e-12, -0.5, 2}
	v := []float64{
		1, 1, 1, 1,
		2, 2, 2, 2,
		3, 3, 3, 3,
		4, 4, 4, 4,
	}

	jacobi.FoldNegativeZeros(values, v, 4, 1e-9)

	require.Equal(t, []float64{0, 0, -0.5, 2}, values)
	require.False(t, math.Signbit(values[0]))
	require.Equal(t, []float64{
		-1, -1, 1, 1,
		-2, -2, 2, 2,
		-3, -3, 3, 3,
		-4, -4, 4, 4,
	}, v)
}
