// SPDX-License-Identifier: MIT

package jacobi

import "math"

// foldNegativeZeros rewrites every eigenvalue in (−tol, 0) and every −0.0 as
// +0.0, and negates the paired column of v. Zero entries of a negated column
// stay +0.0.
func foldNegativeZeros(values, v []float64, n int, tol float64) {
	var c, r int
	var w float64
	for c = 0; c < n; c++ {
		if !isNegativeZero(values[c], tol) {
			continue
		}
		values[c] = 0
		for r = 0; r < n; r++ {
			w = -v[r*n+c]
			if w == 0 {
				w = 0
			}
			v[r*n+c] = w
		}
	}
}

func isNegativeZero(lambda, tol float64) bool {
	if lambda == 0 {
		return math.Signbit(lambda)
	}

	return lambda < 0 && lambda > -tol
}
