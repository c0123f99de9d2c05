// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"time"

	"github.com/katalvlaran/spkmeans/jacobi"
	"github.com/katalvlaran/spkmeans/kmeans"
	"github.com/katalvlaran/spkmeans/matrix"
)

// Stage names reported to the stage observer, in pipeline order.
const (
	StageWAM       = "wam"
	StageDDG       = "ddg"
	StageLaplacian = "gl"
	StageJacobi    = "jacobi"
	StageEigengap  = "eigengap"
	StageEmbed     = "embed"
	StageSeed      = "seed"
	StageRefine    = "refine"
)

const (
	opReduce  = "spectral.Reduce"
	opCluster = "spectral.Cluster"
)

// Option configures Reduce and Cluster.
type Option func(*Options)

// Options carries the settings forwarded to the eigensolver and k-means stages.
type Options struct {
	Jacobi []jacobi.Option
	KMeans []kmeans.Option
	// Seed drives k-means++; 0 selects the fixed default stream.
	Seed int64
	// OnStage, when set, receives the wall time of every completed stage.
	OnStage func(stage string, elapsed time.Duration)
}

// WithJacobiOptions forwards opts to jacobi.Solve.
func WithJacobiOptions(opts ...jacobi.Option) Option {
	return func(o *Options) { o.Jacobi = append(o.Jacobi, opts...) }
}

// WithKMeansOptions forwards opts to kmeans.Refine.
func WithKMeansOptions(opts ...kmeans.Option) Option {
	return func(o *Options) { o.KMeans = append(o.KMeans, opts...) }
}

// WithSeed sets the k-means++ seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithStageObserver registers fn to time every pipeline stage.
func WithStageObserver(fn func(stage string, elapsed time.Duration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}

func (o *Options) timed(stage string, start time.Time) {
	if o.OnStage != nil {
		o.OnStage(stage, time.Since(start))
	}
}

// Reduce maps points (n×m) to their spectral embedding.
// MAIN DESCRIPTION:
//   - WAM → DDG → Laplacian → Jacobi → (eigengap when k ≤ 0) → Embed.
//
// Errors: any stage error, wrapped; ErrInvalidK when k > n.
// Complexity: O(n²·m + R·n²).
func Reduce(points matrix.Matrix, k int, opts ...Option) (*Embedding, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}

	return reduce(points, k, &o)
}

func reduce(points matrix.Matrix, k int, o *Options) (*Embedding, error) {
	start := time.Now()
	w, err := WeightedAdjacency(points)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReduce, err)
	}
	o.timed(StageWAM, start)

	start = time.Now()
	d, err := DiagonalDegree(w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReduce, err)
	}
	o.timed(StageDDG, start)

	start = time.Now()
	l, err := Laplacian(d, w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReduce, err)
	}
	o.timed(StageLaplacian, start)

	start = time.Now()
	eig, err := jacobi.Solve(l, o.Jacobi...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReduce, err)
	}
	o.timed(StageJacobi, start)

	if k <= 0 {
		start = time.Now()
		if k, err = SelectK(eig.Eigenvalues); err != nil {
			return nil, fmt.Errorf("%s: %w", opReduce, err)
		}
		o.timed(StageEigengap, start)
	}

	start = time.Now()
	emb, err := Embed(eig, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReduce, err)
	}
	o.timed(StageEmbed, start)

	return emb, nil
}

// ClusterResult is the outcome of the full spectral k-means pipeline.
type ClusterResult struct {
	// K is the number of clusters (given or chosen by the eigengap heuristic).
	K int
	// Seeds are the k-means++ row indices, in draw order.
	Seeds []int
	// Centroids is k×k: the refined centroids in embedding space.
	Centroids *matrix.Dense
	// Labels[i] is the cluster of input point i.
	Labels     []int
	Embedding  *Embedding
	Refinement *kmeans.Result
}

// Cluster runs Reduce, seeds k-means++ on the embedded points and refines.
// k ≤ 0 selects k with the eigengap heuristic.
func Cluster(points matrix.Matrix, k int, opts ...Option) (*ClusterResult, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}

	emb, err := reduce(points, k, &o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCluster, err)
	}
	embedded, err := emb.Points()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCluster, err)
	}

	start := time.Now()
	seeds, initial, err := kmeans.SeedPlusPlus(embedded, emb.K, o.Seed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCluster, err)
	}
	o.timed(StageSeed, start)

	start = time.Now()
	refined, err := kmeans.Refine(initial, embedded, o.KMeans...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCluster, err)
	}
	o.timed(StageRefine, start)

	centroids, err := refined.Centroids()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCluster, err)
	}

	return &ClusterResult{
		K:          emb.K,
		Seeds:      seeds,
		Centroids:  centroids,
		Labels:     refined.Labels,
		Embedding:  emb,
		Refinement: refined,
	}, nil
}
