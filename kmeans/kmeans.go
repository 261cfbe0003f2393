package kmeans

import (
	"github.com/arrowgraph/fastbc/vertexinfo"
)

// Options configures Aggregate.
type Options struct {
	StopVariance   float64
	MaxIterations  int
	MergeDuplicate bool
}

// Option configures Aggregate.
type Option func(*Options)

// DefaultOptions mirrors the reference aggregator's defaults: no
// minimum variance floor, a generous iteration cap, and duplicate
// centroids dropped rather than merged.
func DefaultOptions() Options {
	return Options{StopVariance: 0, MaxIterations: 100, MergeDuplicate: false}
}

// WithStopVariance sets the variance floor below which iteration
// stops early.
func WithStopVariance(v float64) Option {
	return func(o *Options) { o.StopVariance = v }
}

// WithMaxIterations caps the Lloyd-style refinement loop. A value
// below 100 is honored but is unusually low; Aggregate reports it via
// the returned warnings slice rather than logging directly, so callers
// decide how to surface it.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithMergeDuplicates merges a duplicate centroid's weight into the
// surviving one instead of discarding it. Default drops the weight,
// matching the reference aggregator's documented policy.
func WithMergeDuplicates() Option {
	return func(o *Options) { o.MergeDuplicate = true }
}

// Aggregate collapses candidates (pivot vertices already grouped into
// exact topological classes, paired with their class weights) down to
// k = max(1, floor(kFrac*len(candidates))) super-classes using
// deterministic farthest-so-far seeding and mean-then-nearest-vertex
// iteration. vi must hold a normalized VertexInfo for every candidate.
func Aggregate(candidates []int, classWeights []float64, vi []*vertexinfo.VertexInfo, kFrac float64, opts ...Option) (pivots []int, weights []float64, warnings []string) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxIterations < 100 {
		warnings = append(warnings, "kmeans: max iteration count is low, aggregation may not converge")
	}

	k := int(float64(len(candidates)) * kFrac)
	if k < 1 {
		k = 1
	}
	if k >= len(candidates) {
		return append([]int(nil), candidates...), append([]float64(nil), classWeights...), warnings
	}

	centroid := seedPlusPlus(k, candidates, vi)
	clusterOf := make([][]int, k)

	maxIter := cfg.MaxIterations
	for iter := 1; ; iter++ {
		for i := range clusterOf {
			clusterOf[i] = nil
		}

		for _, v := range candidates {
			nearest := 0
			nearestDist := vi[centroid[0]].ContributionDistance(vi[v])
			for c := 1; c < k; c++ {
				d := vi[centroid[c]].ContributionDistance(vi[v])
				if d < nearestDist {
					nearest = c
					nearestDist = d
				}
			}
			clusterOf[nearest] = append(clusterOf[nearest], v)
		}

		newCentroid := make([]int, k)
		copy(newCentroid, centroid)

		for c := 0; c < k; c++ {
			members := clusterOf[c]
			if len(members) == 0 {
				continue
			}

			mean := vi[members[0]].Clone()
			for _, v := range members[1:] {
				mean.Add(vi[v])
			}
			mean.Scale(1.0 / float64(len(members)))

			nearestV := members[0]
			nearestDist := mean.ContributionDistance(vi[nearestV])
			for _, v := range members[1:] {
				d := mean.ContributionDistance(vi[v])
				if d < nearestDist {
					nearestV = v
					nearestDist = d
				}
			}
			newCentroid[c] = nearestV
		}

		variance := 0.0
		for c := 0; c < k; c++ {
			d := vi[centroid[c]].ContributionDistance(vi[newCentroid[c]])
			if d > variance {
				variance = d
			}
		}
		centroid = newCentroid

		if variance <= cfg.StopVariance || iter >= maxIter {
			break
		}
	}

	centroidWeight := make([]float64, k)
	for c := 0; c < k; c++ {
		for _, v := range clusterOf[c] {
			for i, cand := range candidates {
				if cand == v {
					centroidWeight[c] += classWeights[i]
					break
				}
			}
		}
	}

	pivots, weights = dedupe(centroid, centroidWeight, cfg.MergeDuplicate)
	return pivots, weights, warnings
}

// seedPlusPlus implements the deterministic, RNG-free farthest-so-far
// seeding: centroid 0 is the first candidate, and each subsequent
// centroid is the candidate with the largest running distance to all
// previously chosen centroids.
func seedPlusPlus(k int, candidates []int, vi []*vertexinfo.VertexInfo) []int {
	centroid := make([]int, k)
	centroid[0] = candidates[0]

	cDist := make([]float64, len(candidates))
	for i := 1; i < k; i++ {
		last := vi[centroid[i-1]]
		p := 1.0 / float64(i)
		q := 1.0 - p

		farthest := 0
		for v := range candidates {
			cDist[v] = cDist[v]*q + last.ContributionDistance(vi[candidates[v]])*p
			if cDist[v] > cDist[farthest] {
				farthest = v
			}
		}
		centroid[i] = candidates[farthest]
	}

	return centroid
}

// dedupe drops repeated centroid vertices, keeping the first
// occurrence. With merge set, a duplicate's weight is folded into the
// surviving entry; otherwise it is simply discarded.
func dedupe(centroid []int, weight []float64, merge bool) ([]int, []float64) {
	pos := make(map[int]int, len(centroid))
	pivots := make([]int, 0, len(centroid))
	weights := make([]float64, 0, len(centroid))

	for i, v := range centroid {
		if p, ok := pos[v]; ok {
			if merge {
				weights[p] += weight[i]
			}
			continue
		}
		pos[v] = len(pivots)
		pivots = append(pivots, v)
		weights = append(weights, weight[i])
	}
	return pivots, weights
}
