// SPDX-License-Identifier: MIT

package telemetry

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/spkmeans/jacobi"
	"github.com/katalvlaran/spkmeans/kmeans"
)

// Recorder fans library observer events out to a logger and, when set, Metrics.
type Recorder struct {
	Log     zerolog.Logger
	Metrics *Metrics
}

// NewRecorder binds log and m; m may be nil.
func NewRecorder(log zerolog.Logger, m *Metrics) *Recorder {
	return &Recorder{Log: log, Metrics: m}
}

// JacobiStep is a jacobi.WithObserver callback.
func (r *Recorder) JacobiStep(s jacobi.Step) {
	r.Log.Trace().
		Int("rotation", s.Rotation).
		Int("p", s.Pivot.I).
		Int("q", s.Pivot.J).
		Float64("theta", s.Params.Theta).
		Float64("off", s.OffDiagonal).
		Float64("decrease", s.Decrease).
		Msg("jacobi rotation")
	if r.Metrics != nil {
		r.Metrics.rotations.Inc()
		r.Metrics.offDiagonal.Set(s.OffDiagonal)
	}
}

// KMeansIteration is a kmeans.WithObserver callback.
func (r *Recorder) KMeansIteration(it kmeans.Iteration) {
	r.Log.Debug().
		Int("iteration", it.Iteration).
		Float64("max_shift", it.MaxShift).
		Int("empty", it.Empty).
		Msg("kmeans pass")
	if r.Metrics != nil {
		r.Metrics.iterations.Inc()
	}
}

// Stage is a spectral.WithStageObserver callback.
func (r *Recorder) Stage(stage string, elapsed time.Duration) {
	r.Log.Debug().Str("stage", stage).Dur("elapsed", elapsed).Msg("stage done")
	if r.Metrics != nil {
		r.Metrics.stageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
	}
}
