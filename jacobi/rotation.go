// SPDX-License-Identifier: MIT

package jacobi

import "math"

// pivot returns the strict-upper-triangle entry of largest magnitude in the
// n×n row-major buffer a, together with that magnitude.
// The comparison is strict, so the first maximum in row-major order wins.
// Requires n ≥ 2.
func pivot(a []float64, n int) (Coordinate, float64) {
	best := -1.0
	var at Coordinate
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = math.Abs(a[i*n+j])
			if v > best {
				best = v
				at = Coordinate{I: i, J: j}
			}
		}
	}

	return at, best
}

// sign is +1 for zero and positive values (including −0.0), −1 otherwise.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}

	return 1
}

// rotationFor derives the rotation that zeroes a[i,j] (a[i,j] must be non-zero).
func rotationFor(a []float64, n int, p Coordinate) RotationParameters {
	aii := a[p.I*n+p.I]
	ajj := a[p.J*n+p.J]
	aij := a[p.I*n+p.J]

	theta := (ajj - aii) / (2 * aij)
	t := sign(theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
	c := 1 / math.Sqrt(t*t+1)

	return RotationParameters{Theta: theta, T: t, C: c, S: t * c}
}

// rotate writes A′ = PᵀAP into dst, reading only from src.
// dst and src must be distinct n×n buffers. Rows and columns other than
// i and j are copied unchanged; the pivot pair is written as exact zeros.
func rotate(dst, src []float64, n int, p Coordinate, rp RotationParameters) {
	copy(dst, src)

	i, j := p.I, p.J
	c, s := rp.C, rp.S
	aii := src[i*n+i]
	ajj := src[j*n+j]
	aij := src[i*n+j]

	var r int
	var ari, arj, nri, nrj float64
	for r = 0; r < n; r++ {
		if r == i || r == j {
			continue
		}
		ari = src[r*n+i]
		arj = src[r*n+j]
		nri = c*ari - s*arj
		nrj = c*arj + s*ari
		dst[r*n+i], dst[i*n+r] = nri, nri
		dst[r*n+j], dst[j*n+r] = nrj, nrj
	}

	dst[i*n+i] = c*c*aii + s*s*ajj - 2*s*c*aij
	dst[j*n+j] = s*s*aii + c*c*ajj + 2*s*c*aij
	dst[i*n+j], dst[j*n+i] = 0, 0
}

// rotateVectors applies V ← V·P in place; only columns i and j change.
func rotateVectors(v []float64, n int, p Coordinate, rp RotationParameters) {
	i, j := p.I, p.J
	c, s := rp.C, rp.S

	var r int
	var vri, vrj float64
	for r = 0; r < n; r++ {
		vri = v[r*n+i]
		vrj = v[r*n+j]
		v[r*n+i] = c*vri - s*vrj
		v[r*n+j] = s*vri + c*vrj
	}
}

// offDiagonal returns Σ_{p<q} 2·a_pq² of an n×n row-major buffer.
func offDiagonal(a []float64, n int) float64 {
	var sum, v float64
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = a[i*n+j]
			sum += 2 * v * v
		}
	}

	return sum
}
