// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spkmeans/internal/config"
	"github.com/katalvlaran/spkmeans/internal/telemetry"
	"github.com/katalvlaran/spkmeans/jacobi"
	"github.com/katalvlaran/spkmeans/kmeans"
)

const version = "v0.3.0"

// Goals, one subcommand each.
const (
	goalSPK    = "spk"
	goalWAM    = "wam"
	goalDDG    = "ddg"
	goalGL     = "gl"
	goalJacobi = "jacobi"
)

var errNegativeK = errors.New("spkmeans: k must be >= 0")

type app struct {
	stdout, stderr io.Writer

	configPath string
	k          int

	runID   string
	log     zerolog.Logger
	cfg     *config.Config
	metrics *telemetry.Metrics
	rec     *telemetry.Recorder
}

func newApp(stdout, stderr io.Writer) *app {
	log, _ := telemetry.NewLogger("warn", stderr)

	return &app{stdout: stdout, stderr: stderr, log: log}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "spkmeans",
		Short:         "Spectral k-means clustering",
		Long:          "Builds the Gaussian affinity graph of a point set, diagonalizes its Laplacian with cyclic Jacobi rotations and clusters the spectral embedding with k-means++ seeded k-means.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (yaml, toml or json)")
	pf.String("format", config.FormatCSV, "Output format (csv|yaml)")
	pf.Int64("seed", 0, "k-means++ seed (0 selects the default stream)")
	pf.String("log-level", "warn", "Log level (trace|debug|info|warn|error)")
	pf.String("metrics-file", "", "Write Prometheus metrics to this file after the run")
	pf.Int("max-rotations", jacobi.DefaultMaxRotations, "Jacobi rotation budget")
	pf.Int("max-iter", kmeans.DefaultMaxIterations, "k-means iteration budget")

	root.PersistentPreRunE = a.setup
	root.PersistentPostRunE = a.flushMetrics

	spk := &cobra.Command{
		Use:   goalSPK + " <file>",
		Short: "Cluster the points and print k-means++ seeds and final centroids",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runSPK,
	}
	spk.Flags().IntVar(&a.k, "k", 0, "Number of clusters (0 selects k by the eigengap heuristic)")

	root.AddCommand(
		spk,
		a.graphCmd(goalWAM, "Print the weighted adjacency matrix"),
		a.graphCmd(goalDDG, "Print the diagonal degree matrix"),
		a.graphCmd(goalGL, "Print the graph Laplacian"),
		&cobra.Command{
			Use:   goalJacobi + " <file>",
			Short: "Print eigenvalues and eigenvectors of a symmetric matrix",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runJacobi,
		},
	)

	return root
}

func (a *app) graphCmd(goal, short string) *cobra.Command {
	return &cobra.Command{
		Use:   goal + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runGraph(goal, args[0])
		},
	}
}

// setup loads configuration and builds the logger, metrics and recorder.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := telemetry.NewLogger(cfg.Log.Level, a.stderr)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.runID = telemetry.NewRunID()
	a.log = telemetry.WithRun(log, a.runID, cmd.Name())
	a.metrics = telemetry.NewMetrics()
	a.rec = telemetry.NewRecorder(a.log, a.metrics)
	a.log.Debug().
		Str("config", a.configPath).
		Str("format", cfg.Output.Format).
		Int64("seed", cfg.KMeans.Seed).
		Msg("configuration loaded")

	return nil
}

func (a *app) flushMetrics(_ *cobra.Command, _ []string) error {
	if a.cfg == nil || a.cfg.Metrics.File == "" {
		return nil
	}
	if err := a.metrics.WriteToTextfile(a.cfg.Metrics.File); err != nil {
		return err
	}
	a.log.Info().Str("file", a.cfg.Metrics.File).Msg("metrics written")

	return nil
}

func (a *app) checkK() error {
	if a.k < 0 {
		return fmt.Errorf("%w (%d)", errNegativeK, a.k)
	}

	return nil
}
