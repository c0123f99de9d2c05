// SPDX-License-Identifier: MIT

package jacobi

import "errors"

// Structural input errors come from the matrix package (ErrNilMatrix,
// ErrNonSquare, ErrAsymmetry, ErrNaNInf) and are wrapped, never replaced.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("jacobi: invalid option supplied")
)
