package louvain

import (
	"context"
	"math"
	"math/rand"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/arrowgraph/fastbc/graph"
)

// Partitioner is the output contract every community detector plugged
// into the driver must satisfy: partition the graph's vertices into
// communities covering V exactly once. Louvain's own internal
// algorithm is not part of this contract — any deterministic
// implementation honoring it is interchangeable.
type Partitioner interface {
	Partition(g *graph.Graph) ([][]int, error)
}

// Options configures an Evaluator.
type Options struct {
	Seeds     []int64
	Precision float64
}

// Option configures an Evaluator.
type Option func(*Options)

// DefaultOptions runs a single instance seeded at 1 with a 0.01
// modularity-improvement threshold.
func DefaultOptions() Options {
	return Options{Seeds: []int64{1}, Precision: 0.01}
}

// WithSeeds sets the RNG seeds, one per parallel instance.
func WithSeeds(seeds ...int64) Option {
	return func(o *Options) { o.Seeds = append([]int64(nil), seeds...) }
}

// WithPrecision sets the modularity-improvement threshold epsilon
// below which a pass is no longer considered an improvement.
func WithPrecision(p float64) Option {
	return func(o *Options) { o.Precision = p }
}

// Evaluator runs multiple seeded Louvain-style instances and reports
// the partition of whichever reached the highest modularity.
type Evaluator struct {
	opts Options
}

// New builds an Evaluator from opts, falling back to DefaultOptions
// for anything unset.
func New(opts ...Option) *Evaluator {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Evaluator{opts: cfg}
}

type instanceResult struct {
	groups     [][]int
	modularity float64
}

// Partition implements Partitioner. It never returns a non-nil error;
// the signature matches the Partitioner contract so a future detector
// with genuine failure modes (disconnected RNG source, I/O-backed
// storage, ...) can be swapped in without changing the driver.
func (e *Evaluator) Partition(g *graph.Graph) ([][]int, error) {
	results := make([]instanceResult, len(e.opts.Seeds))

	eg, _ := errgroup.WithContext(context.Background())
	for i, seed := range e.opts.Seeds {
		i, seed := i, seed
		eg.Go(func() error {
			results[i] = runInstance(g, seed, e.opts.Precision)
			return nil
		})
	}
	_ = eg.Wait() // runInstance never errors

	best := 0
	for i := 1; i < len(results); i++ {
		if results[i].modularity > results[best].modularity {
			best = i
		}
	}

	return canonicalize(results[best].groups), nil
}

func canonicalize(groups [][]int) [][]int {
	out := make([][]int, 0, len(groups))
	for _, grp := range groups {
		if len(grp) == 0 {
			continue
		}
		g := append([]int(nil), grp...)
		sort.Ints(g)
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

func runInstance(g *graph.Graph, seed int64, precision float64) instanceResult {
	rng := rand.New(rand.NewSource(seed))

	curGraph := g
	groups := singletonGroups(g.Order())
	prevMod := modularity(curGraph, identity(curGraph.Order()))

	for {
		comm := localMove(curGraph, rng)
		comm = renumber(comm)
		newMod := modularity(curGraph, comm)

		numCommunities := 0
		for _, c := range comm {
			if c+1 > numCommunities {
				numCommunities = c + 1
			}
		}

		if numCommunities == curGraph.Order() || newMod-prevMod < precision {
			break
		}

		groups = regroup(groups, comm)
		curGraph = aggregate(curGraph, comm, numCommunities)
		prevMod = newMod
	}

	return instanceResult{groups: groups, modularity: prevMod}
}

func singletonGroups(n int) [][]int {
	out := make([][]int, n)
	for i := range out {
		out[i] = []int{i}
	}
	return out
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// localMove repeatedly sweeps every vertex, moving it to whichever
// neighboring (or its own) community maximizes directed modularity
// gain, until a full sweep produces no move or a pass cap is hit.
func localMove(g *graph.Graph, rng *rand.Rand) []int {
	n := g.Order()
	comm := identity(n)
	if n == 0 {
		return comm
	}

	m := g.TotalWeight()
	if m == 0 {
		return comm
	}

	outTot := make([]float64, n)
	inTot := make([]float64, n)
	for v := 0; v < n; v++ {
		outTot[v] = g.OutWeightedDegree(v)
		inTot[v] = g.InWeightedDegree(v)
	}

	order := rng.Perm(n)

	const maxPasses = 100
	for pass := 0; pass < maxPasses; pass++ {
		moved := false

		for _, v := range order {
			old := comm[v]
			kOut := g.OutWeightedDegree(v)
			kIn := g.InWeightedDegree(v)

			outTot[old] -= kOut
			inTot[old] -= kIn

			candidates := map[int]float64{old: 0}
			for _, e := range g.ForwardStar(v) {
				if e.Vertex == v {
					continue
				}
				candidates[comm[e.Vertex]] += e.Weight
			}
			for _, e := range g.BackwardStar(v) {
				if e.Vertex == v {
					continue
				}
				candidates[comm[e.Vertex]] += e.Weight
			}

			bestC, bestGain := old, math.Inf(-1)
			for c, edgeWeight := range candidates {
				gain := edgeWeight/m - (outTot[c]*kIn+inTot[c]*kOut)/(m*m)
				if gain > bestGain {
					bestGain = gain
					bestC = c
				}
			}

			comm[v] = bestC
			outTot[bestC] += kOut
			inTot[bestC] += kIn
			if bestC != old {
				moved = true
			}
		}

		if !moved {
			break
		}
	}

	return comm
}

// modularity computes directed modularity Q = Σ_C e(C)/m −
// Σ_C outDegTot_C·inDegTot_C/m² for the given community assignment.
func modularity(g *graph.Graph, comm []int) float64 {
	m := g.TotalWeight()
	if m == 0 {
		return 0
	}

	n := g.Order()
	numC := 0
	for _, c := range comm {
		if c+1 > numC {
			numC = c + 1
		}
	}

	intra := make([]float64, numC)
	outTot := make([]float64, numC)
	inTot := make([]float64, numC)

	for v := 0; v < n; v++ {
		outTot[comm[v]] += g.OutWeightedDegree(v)
		inTot[comm[v]] += g.InWeightedDegree(v)
		for _, e := range g.ForwardStar(v) {
			if comm[v] == comm[e.Vertex] {
				intra[comm[v]] += e.Weight
			}
		}
	}

	var q float64
	for c := 0; c < numC; c++ {
		q += intra[c]/m - (outTot[c]*inTot[c])/(m*m)
	}
	return q
}

// renumber maps community ids to a dense 0..k-1 range, ordered by
// first appearance when scanning vertices in ascending order.
func renumber(comm []int) []int {
	id := make(map[int]int)
	next := 0
	out := make([]int, len(comm))
	for v, c := range comm {
		nc, ok := id[c]
		if !ok {
			nc = next
			id[c] = nc
			next++
		}
		out[v] = nc
	}
	return out
}

func regroup(groups [][]int, comm []int) [][]int {
	k := 0
	for _, c := range comm {
		if c+1 > k {
			k = c + 1
		}
	}
	out := make([][]int, k)
	for v, c := range comm {
		out[c] = append(out[c], groups[v]...)
	}
	return out
}

// aggregate builds the coarser graph whose vertices are comm's
// (already-renumbered) communities, with inter-community edges
// accumulated and intra-community edges becoming self-loops.
func aggregate(g *graph.Graph, comm []int, k int) *graph.Graph {
	ng := graph.New()
	for _, v := range g.Vertices() {
		for _, e := range g.ForwardStar(v) {
			_ = ng.AddEdge(comm[v], comm[e.Vertex], e.Weight)
		}
	}
	ng.Grow(k)
	return ng
}
