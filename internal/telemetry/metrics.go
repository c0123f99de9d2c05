// SPDX-License-Identifier: MIT

package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the pipeline collectors on a private registry.
type Metrics struct {
	registry      *prometheus.Registry
	rotations     prometheus.Counter
	offDiagonal   prometheus.Gauge
	iterations    prometheus.Counter
	stageDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the spkmeans collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rotations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spkmeans_jacobi_rotations_total",
			Help: "Jacobi rotations applied across all solves.",
		}),
		offDiagonal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "spkmeans_jacobi_off_diagonal",
			Help: "Off-diagonal sum of squares after the latest rotation.",
		}),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spkmeans_kmeans_iterations_total",
			Help: "K-means assign/update passes across all refinements.",
		}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "spkmeans_stage_duration_seconds",
			Help:    "Wall time of each pipeline stage.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"stage"}),
	}
	m.registry.MustRegister(m.rotations, m.offDiagonal, m.iterations, m.stageDuration)

	return m
}

// Registry exposes the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteToTextfile dumps all metrics in the Prometheus text format.
func (m *Metrics) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("telemetry: write metrics %s: %w", path, err)
	}

	return nil
}
