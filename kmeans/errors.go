// SPDX-License-Identifier: MIT

package kmeans

import "errors"

var (
	// ErrInvalidK indicates that the number of clusters is outside [1, n].
	ErrInvalidK = errors.New("kmeans: k out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("kmeans: invalid option supplied")
)
