// SPDX-License-Identifier: MIT

package jacobi

import "github.com/katalvlaran/spkmeans/matrix"

// Coordinate addresses an off-diagonal pivot; I < J always holds.
type Coordinate struct {
	I, J int
}

// RotationParameters describes the Givens rotation that annihilates a pivot.
// Theta is the cotangent of twice the rotation angle; C and S satisfy C² + S² = 1.
type RotationParameters struct {
	Theta float64
	T     float64
	C     float64
	S     float64
}

// Step is delivered to the observer after every rotation.
type Step struct {
	// Rotation is the 1-based count of rotations applied so far.
	Rotation int
	// Pivot is the entry annihilated by this rotation.
	Pivot  Coordinate
	Params RotationParameters
	// OffDiagonal is off(A′) after the rotation.
	OffDiagonal float64
	// Decrease is off(A) − off(A′); never negative in exact arithmetic.
	Decrease float64
}

// Result is the eigendecomposition returned by Solve.
type Result struct {
	// Eigenvalues in the diagonal order of the final rotated matrix (unsorted).
	Eigenvalues []float64
	// Eigenvectors holds one eigenvector per column; column c pairs with Eigenvalues[c].
	Eigenvectors *matrix.Dense
	// Rotations is the number of rotations applied.
	Rotations int
	// Converged is false when MaxRotations ran out before the stopping rule fired.
	Converged bool
}

// Vector returns a copy of the eigenvector paired with Eigenvalues[c].
func (r *Result) Vector(c int) ([]float64, error) {
	n := r.Eigenvectors.Rows()
	if c < 0 || c >= n {
		return nil, matrix.ErrOutOfRange
	}
	out := make([]float64, n)
	var err error
	for i := 0; i < n; i++ {
		if out[i], err = r.Eigenvectors.At(i, c); err != nil {
			return nil, err
		}
	}

	return out, nil
}
