// SPDX-License-Identifier: MIT

package jacobi

import (
	"fmt"
	"math"
)

// Defaults mirror the reference tuning of the pipeline.
const (
	// DefaultMaxRotations bounds the number of rotations per Solve call.
	DefaultMaxRotations = 100

	// DefaultEpsilon is the off-diagonal decrease at or below which Solve stops.
	DefaultEpsilon = 1e-5

	// DefaultZeroTolerance is the width of the window (−tol, 0] folded to +0.0.
	DefaultZeroTolerance = 1e-9
)

// Option configures Solve via functional arguments.
// If an Option is invalid (e.g. a negative epsilon), it is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds the stopping rule, sign policy and observer hook of Solve.
type Options struct {
	MaxRotations  int
	Epsilon       float64
	ZeroTolerance float64

	// Observer, when set, is called after every rotation.
	Observer func(Step)

	err error
}

// DefaultOptions returns the defaults documented above.
func DefaultOptions() Options {
	return Options{
		MaxRotations:  DefaultMaxRotations,
		Epsilon:       DefaultEpsilon,
		ZeroTolerance: DefaultZeroTolerance,
	}
}

// WithMaxRotations caps the number of rotations (n ≥ 1).
func WithMaxRotations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxRotations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRotations = n
	}
}

// WithEpsilon sets the convergence threshold on the off-diagonal decrease.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !finiteNonNegative(eps) {
			o.err = fmt.Errorf("%w: Epsilon must be finite and >= 0 (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithZeroTolerance sets the window below zero that is folded to +0.0.
// A tolerance of 0 folds only −0.0.
func WithZeroTolerance(tol float64) Option {
	return func(o *Options) {
		if !finiteNonNegative(tol) {
			o.err = fmt.Errorf("%w: ZeroTolerance must be finite and >= 0 (%g)", ErrOptionViolation, tol)
			return
		}
		o.ZeroTolerance = tol
	}
}

// WithObserver registers fn to receive a Step after every rotation.
func WithObserver(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
