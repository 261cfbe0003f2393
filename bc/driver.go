package bc

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/arrowgraph/fastbc"
	"github.com/arrowgraph/fastbc/brandes"
	"github.com/arrowgraph/fastbc/clusterevaluator"
	"github.com/arrowgraph/fastbc/graph"
	"github.com/arrowgraph/fastbc/kmeans"
	"github.com/arrowgraph/fastbc/louvain"
	"github.com/arrowgraph/fastbc/pivot"
	"github.com/arrowgraph/fastbc/subgraph"
	"github.com/arrowgraph/fastbc/vertexinfo"
)

// ErrKFracOutOfRange is returned when KFrac is set outside (0, 1].
var ErrKFracOutOfRange = errors.New("kFrac must be in (0, 1]")

// Options configures Compute.
type Options struct {
	// Partitioner supplies the community detector. Defaults to
	// louvain.New().
	Partitioner louvain.Partitioner
	// KFrac enables k-means++ pivot aggregation when > 0, collapsing
	// each community's exact classes to max(1, floor(KFrac*classes))
	// super-classes. 0 (the default) keeps exact classes.
	KFrac float64
	// Exact bypasses clustering entirely and runs brandes.Exact.
	Exact bool
	// AllowBorderPivots lets a topological class with only border
	// members still contribute a pivot instead of being skipped.
	AllowBorderPivots bool
	// Strict turns subgraph inconsistencies into hard failures
	// instead of warnings.
	Strict bool
	// Workers caps per-region goroutine concurrency. 0 means unbounded.
	Workers int
	// Logger receives progress lines and non-fatal warnings. Defaults
	// to slog.Default().
	Logger *slog.Logger
}

// Option configures Compute.
type Option func(*Options)

// DefaultOptions runs exact topological classes (no kmeans reduction)
// over a default louvain.Evaluator, unbounded concurrency.
func DefaultOptions() Options {
	return Options{Partitioner: louvain.New(), Logger: slog.Default()}
}

func WithPartitioner(p louvain.Partitioner) Option {
	return func(o *Options) { o.Partitioner = p }
}

func WithKFrac(k float64) Option {
	return func(o *Options) { o.KFrac = k }
}

func WithExact() Option {
	return func(o *Options) { o.Exact = true }
}

func WithAllowBorderPivots() Option {
	return func(o *Options) { o.AllowBorderPivots = true }
}

func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

type communityResult struct {
	members []int
	pivots  []int
	weights []float64
}

// Compute runs the clustered betweenness-centrality pipeline over g:
// Louvain partitioning, per-community intra-cluster evaluation and
// pivot selection (parallel region), then a global single-source
// Brandes pass scaled and combined per pivot (a second parallel
// region). With Exact set, it instead runs the every-vertex-source
// fallback directly.
func Compute(g *graph.Graph, opts ...Option) ([]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.KFrac < 0 || cfg.KFrac > 1 {
		return nil, fastbc.NewError(fastbc.KindInvalidInput, ErrKFracOutOfRange)
	}

	if cfg.Exact {
		cfg.Logger.Info("computing exact betweenness centrality")
		return brandes.Exact(g, cfg.Workers), nil
	}

	cfg.Logger.Info("computing communities")
	partitions, err := cfg.Partitioner.Partition(g)
	if err != nil {
		return nil, fastbc.NewError(fastbc.KindInvalidInput, err)
	}
	cfg.Logger.Info("found communities", "count", len(partitions))

	n := g.Order()
	globalBC := make([]float64, n)
	vi := make([]*vertexinfo.VertexInfo, n)
	results := make([]communityResult, len(partitions))

	var subgraphOpts []subgraph.Option
	if cfg.Strict {
		subgraphOpts = append(subgraphOpts, subgraph.WithStrict())
	}
	var pivotOpts []pivot.Option
	if cfg.AllowBorderPivots {
		pivotOpts = append(pivotOpts, pivot.WithAllowBorderPivots())
	}

	eg, _ := errgroup.WithContext(context.Background())
	if cfg.Workers > 0 {
		eg.SetLimit(cfg.Workers)
	}

	for i, members := range partitions {
		i, members := i, members
		eg.Go(func() error {
			sg, err := subgraph.New(members, g, subgraphOpts...)
			if err != nil {
				return fastbc.NewError(fastbc.KindInconsistentSubGraph, err)
			}
			for _, w := range sg.Warnings() {
				cfg.Logger.Warn("inconsistent subgraph", "community", i, "detail", w)
			}

			cfg.Logger.Debug("computing local BC for community", "community", i)
			if err := clusterevaluator.Run(sg, globalBC, vi, cfg.Workers); err != nil {
				return err
			}

			if len(sg.Borders()) == 0 {
				// No path crosses an isolated community's boundary, so its
				// intra BC is final and no pivots are drawn for it.
				results[i] = communityResult{members: sg.Vertices()}
				return nil
			}

			cfg.Logger.Debug("selecting pivots for community", "community", i)
			borderSet := make(map[int]bool, len(sg.Borders()))
			for _, b := range sg.Borders() {
				borderSet[b] = true
			}

			pivots, weights := pivot.Select(globalBC, vi, sg.Vertices(), borderSet, pivotOpts...)
			if cfg.KFrac > 0 && len(pivots) > 0 {
				aggPivots, aggWeights, warnings := kmeans.Aggregate(pivots, weights, vi, cfg.KFrac)
				for _, w := range warnings {
					cfg.Logger.Warn(w)
				}
				pivots, weights = aggPivots, aggWeights
			}

			results[i] = communityResult{members: sg.Vertices(), pivots: pivots, weights: weights}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	intraBC := append([]float64(nil), globalBC...)

	cfg.Logger.Info("computing global BC with selected pivots")

	type pivotTask struct {
		vertex  int
		weight  float64
		members []int
	}
	var tasks []pivotTask
	for _, r := range results {
		for idx, p := range r.pivots {
			tasks = append(tasks, pivotTask{vertex: p, weight: r.weights[idx], members: r.members})
		}
	}

	var mu sync.Mutex
	eg2, _ := errgroup.WithContext(context.Background())
	if cfg.Workers > 0 {
		eg2.SetLimit(cfg.Workers)
	}
	for _, task := range tasks {
		task := task
		eg2.Go(func() error {
			d := brandes.SingleSource(task.vertex, g)

			mu.Lock()
			for v := 0; v < n; v++ {
				globalBC[v] += d[v] * task.weight
			}
			for _, v := range task.members {
				globalBC[v] -= intraBC[v] * task.weight
			}
			mu.Unlock()
			return nil
		})
	}
	_ = eg2.Wait() // tasks never error

	return globalBC, nil
}
