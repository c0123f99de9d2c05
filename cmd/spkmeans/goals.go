// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spkmeans/internal/dataio"
	"github.com/katalvlaran/spkmeans/jacobi"
	"github.com/katalvlaran/spkmeans/kmeans"
	"github.com/katalvlaran/spkmeans/matrix"
	"github.com/katalvlaran/spkmeans/spectral"
)

func (a *app) load(path string) (*matrix.Dense, error) {
	points, err := dataio.LoadPoints(path)
	if err != nil {
		return nil, err
	}
	a.log.Info().Str("file", path).Int("n", points.Rows()).Int("dim", points.Cols()).Msg("points loaded")

	return points, nil
}

func (a *app) emit(r *dataio.Report) error {
	return dataio.Write(a.stdout, a.cfg.Output.Format, r)
}

// graph runs the graph stages up to and including goal.
func (a *app) graph(goal string, points matrix.Matrix) (*matrix.Dense, error) {
	start := time.Now()
	w, err := spectral.WeightedAdjacency(points)
	if err != nil {
		return nil, err
	}
	a.rec.Stage(spectral.StageWAM, time.Since(start))
	if goal == goalWAM {
		return w, nil
	}

	start = time.Now()
	d, err := spectral.DiagonalDegree(w)
	if err != nil {
		return nil, err
	}
	a.rec.Stage(spectral.StageDDG, time.Since(start))
	if goal == goalDDG {
		return d, nil
	}

	start = time.Now()
	l, err := spectral.Laplacian(d, w)
	if err != nil {
		return nil, err
	}
	a.rec.Stage(spectral.StageLaplacian, time.Since(start))

	return l, nil
}

func (a *app) runGraph(goal, path string) error {
	points, err := a.load(path)
	if err != nil {
		return err
	}
	m, err := a.graph(goal, points)
	if err != nil {
		return fmt.Errorf("%s: %w", goal, err)
	}
	rows, err := dataio.MatrixRows(m)
	if err != nil {
		return err
	}

	return a.emit(&dataio.Report{Goal: goal, Rows: rows})
}

// runJacobi prints the eigenvalues on the first line and eigenvector c on line c+2.
func (a *app) runJacobi(_ *cobra.Command, args []string) error {
	sym, err := a.load(args[0])
	if err != nil {
		return err
	}

	opts := append(a.cfg.JacobiOptions(), jacobi.WithObserver(a.rec.JacobiStep))
	start := time.Now()
	res, err := jacobi.Solve(sym, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", goalJacobi, err)
	}
	a.rec.Stage(spectral.StageJacobi, time.Since(start))
	a.log.Info().Int("rotations", res.Rotations).Bool("converged", res.Converged).Msg("jacobi finished")

	vt, err := matrix.Transpose(res.Eigenvectors)
	if err != nil {
		return err
	}

	return a.emit(&dataio.Report{Goal: goalJacobi, Eigenvalues: res.Eigenvalues, Rows: vt.RowSlices()})
}

// runSPK prints the k-means++ seed indices followed by the k refined centroids.
func (a *app) runSPK(_ *cobra.Command, args []string) error {
	if err := a.checkK(); err != nil {
		return err
	}
	points, err := a.load(args[0])
	if err != nil {
		return err
	}

	jopts := append(a.cfg.JacobiOptions(), jacobi.WithObserver(a.rec.JacobiStep))
	kopts := append(a.cfg.KMeansOptions(), kmeans.WithObserver(a.rec.KMeansIteration))
	res, err := spectral.Cluster(points, a.k,
		spectral.WithSeed(a.cfg.KMeans.Seed),
		spectral.WithJacobiOptions(jopts...),
		spectral.WithKMeansOptions(kopts...),
		spectral.WithStageObserver(a.rec.Stage))
	if err != nil {
		return fmt.Errorf("%s: %w", goalSPK, err)
	}
	a.log.Info().
		Int("k", res.K).
		Ints("seeds", res.Seeds).
		Int("iterations", res.Refinement.Iterations).
		Bool("converged", res.Refinement.Converged).
		Msg("clustering finished")

	return a.emit(&dataio.Report{Goal: goalSPK, Seeds: res.Seeds, Rows: res.Centroids.RowSlices()})
}
