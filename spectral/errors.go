// SPDX-License-Identifier: MIT

package spectral

import "errors"

// Sentinel errors for the spectral stages. Structural matrix errors are the
// matrix package sentinels wrapped with an operation tag.
var (
	// ErrEmptyInput indicates that no eigenvalues (or no points) were supplied.
	ErrEmptyInput = errors.New("spectral: empty input")

	// ErrInvalidK indicates that k is outside [1, n].
	ErrInvalidK = errors.New("spectral: k out of range")

	// ErrNilResult indicates that a nil eigendecomposition was passed to Embed.
	ErrNilResult = errors.New("spectral: nil eigen result")
)
