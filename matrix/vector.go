// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const opDistance = "Distance"

// SquaredDistance returns Σ (a[i]-b[i])² for two vectors of equal length.
// Errors: ErrNilMatrix (nil vector), ErrDimensionMismatch (length mismatch).
// Complexity: O(d).
func SquaredDistance(a, b []float64) (float64, error) {
	if a == nil || b == nil {
		return 0, matrixErrorf(opDistance, ErrNilMatrix)
	}
	if len(a) != len(b) {
		return 0, matrixErrorf(opDistance, fmt.Errorf("len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch))
	}

	return squaredDistance(a, b), nil
}

// Distance returns the Euclidean norm ‖a-b‖₂.
func Distance(a, b []float64) (float64, error) {
	sq, err := SquaredDistance(a, b)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(sq), nil
}

// squaredDistance is the unchecked kernel; callers guarantee len(a) == len(b).
func squaredDistance(a, b []float64) float64 {
	var acc, d float64
	for i := range a {
		d = a[i] - b[i]
		acc += d * d
	}

	return acc
}
