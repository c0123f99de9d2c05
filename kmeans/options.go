// SPDX-License-Identifier: MIT

package kmeans

import (
	"fmt"
	"math"
)

const (
	// DefaultMaxIterations bounds the number of assign/update passes.
	DefaultMaxIterations = 300

	// DefaultEpsilon is the centroid shift below which a cluster counts as settled.
	DefaultEpsilon = 0.001
)

// Option configures Refine via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Refine.
type Option func(*Options)

// Options holds the stopping rule and observer hook of Refine.
type Options struct {
	MaxIterations int
	Epsilon       float64

	// Observer, when set, is called after every update pass.
	Observer func(Iteration)

	err error
}

// DefaultOptions returns the defaults documented above.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Epsilon:       DefaultEpsilon,
	}
}

// WithMaxIterations caps the number of passes (n ≥ 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithEpsilon sets the per-cluster convergence threshold (finite, ≥ 0).
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			o.err = fmt.Errorf("%w: Epsilon must be finite and >= 0 (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithObserver registers fn to receive an Iteration after every pass.
func WithObserver(fn func(Iteration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}
