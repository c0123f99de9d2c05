// SPDX-License-Identifier: MIT

package jacobi

import (
	"fmt"

	"github.com/katalvlaran/spkmeans/matrix"
)

const (
	opSolve       = "jacobi.Solve"
	opOffDiagonal = "jacobi.OffDiagonalSquare"
)

// Solve computes all eigenpairs of the symmetric matrix a.
// MAIN DESCRIPTION:
//   - Cyclic max-pivot Jacobi iteration over a private copy of a; the input is never mutated.
//
// Implementation:
//   - Stage 1: Apply options; validate non-nil, square, symmetric within
//     matrix.DefaultEpsilon and finite.
//   - Stage 2: A matrix that is already diagonal (always the case for n = 1)
//     skips iteration and keeps the identity eigenvectors.
//   - Stage 3: Rotate until the off-diagonal decrease is ≤ Epsilon, the pivot is zero,
//     or MaxRotations is reached. A and A′ alternate between two buffers.
//   - Stage 4: Read eigenvalues from the diagonal and fold negative zeros.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf, matrix.ErrAsymmetry.
//
// Complexity:
//   - Time O(R·n²), Space O(n²).
func Solve(a matrix.Matrix, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, o.err)
	}

	cur, n, err := loadSymmetric(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	vecs, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	v := vecs.Values()

	diagonal, err := matrix.IsZeroOffDiagonal(a, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	res := &Result{Converged: true}
	if !diagonal {
		res.Rotations, res.Converged = iterate(cur, v, n, o)
	}

	// After iterate returns, the live matrix sits in cur (buffers are swapped back).
	final, err := denseFromFlat(cur, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	values, err := matrix.Diagonal(final)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	foldNegativeZeros(values, v, n, o.ZeroTolerance)

	if res.Eigenvectors, err = denseFromFlat(v, n); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	res.Eigenvalues = values

	return res, nil
}

// iterate runs the rotation loop. On return cur holds the final A and v the
// accumulated rotations.
func iterate(cur, v []float64, n int, o Options) (rotations int, converged bool) {
	next := make([]float64, len(cur))
	live := cur
	off := offDiagonal(live, n)

	var (
		p         Coordinate
		magnitude float64
		rp        RotationParameters
		newOff    float64
		decrease  float64
	)
	for rotations < o.MaxRotations {
		p, magnitude = pivot(live, n)
		if magnitude == 0 {
			converged = true
			break
		}

		rp = rotationFor(live, n, p)
		rotate(next, live, n, p, rp)
		rotateVectors(v, n, p, rp)

		newOff = offDiagonal(next, n)
		decrease = off - newOff
		rotations++
		live, next = next, live
		off = newOff

		if o.Observer != nil {
			o.Observer(Step{
				Rotation:    rotations,
				Pivot:       p,
				Params:      rp,
				OffDiagonal: newOff,
				Decrease:    decrease,
			})
		}

		if decrease <= o.Epsilon {
			converged = true
			break
		}
	}

	if &live[0] != &cur[0] {
		copy(cur, live)
	}

	return rotations, converged
}

// OffDiagonalSquare returns off(m) = Σ_{p<q} 2·m_pq² for a square matrix.
// For a symmetric matrix this is the squared Frobenius norm of its off-diagonal part.
func OffDiagonalSquare(m matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, fmt.Errorf("%s: %w", opOffDiagonal, err)
	}
	n := m.Rows()
	var sum, v float64
	var err error
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, fmt.Errorf("%s: %w", opOffDiagonal, err)
			}
			sum += 2 * v * v
		}
	}

	return sum, nil
}

// loadSymmetric validates a and copies it into a fresh row-major buffer.
func loadSymmetric(a matrix.Matrix) ([]float64, int, error) {
	if err := matrix.ValidateSymmetric(a, matrix.DefaultEpsilon); err != nil {
		return nil, 0, err
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, 0, err
	}
	n := a.Rows()
	if d, ok := a.(*matrix.Dense); ok {
		return d.Values(), n, nil
	}

	buf := make([]float64, n*n)
	var err error
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if buf[i*n+j], err = a.At(i, j); err != nil {
				return nil, 0, err
			}
		}
	}

	return buf, n, nil
}

func denseFromFlat(buf []float64, n int) (*matrix.Dense, error) {
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = out.Set(i, j, buf[i*n+j]); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
