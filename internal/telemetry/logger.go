// SPDX-License-Identifier: MIT

// Package telemetry turns the observer hooks of the jacobi, kmeans and
// spectral packages into zerolog events and Prometheus metrics.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NewLogger returns a console logger writing to w (stderr when nil).
// An empty level means "info". Package-level zerolog settings are left to
// the caller.
func NewLogger(level string, w io.Writer) (zerolog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	if strings.TrimSpace(level) == "" {
		level = zerolog.InfoLevel.String()
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("telemetry: log level %q: %w", level, err)
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: w != os.Stderr}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// NewRunID returns a fresh identifier for one CLI invocation.
func NewRunID() string {
	return uuid.New().String()
}

// WithRun tags every event of log with runID and goal.
func WithRun(log zerolog.Logger, runID, goal string) zerolog.Logger {
	return log.With().Str("run_id", runID).Str("goal", goal).Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger { return zerolog.Nop() }
