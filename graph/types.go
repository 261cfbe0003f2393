package graph

import (
	"fmt"
	"sort"
)

// Star is one entry of a forward or backward star: the other endpoint of
// the edge and its accumulated weight.
type Star struct {
	Vertex int
	Weight float64
}

// Graph is a directed, positively-weighted graph over dense integer
// vertex indices 0..n-1. It grows its adjacency storage to
// max(src,dst)+1 as edges are added. Duplicate edges accumulate their
// weights rather than overwriting.
type Graph struct {
	forward  []map[int]float64 // forward[src][dst] = accumulated weight
	backward []map[int]float64 // backward[dst][src] = accumulated weight

	edges       int     // number of distinct (src,dst) pairs
	totalWeight float64 // sum of all edge weights
	outDegree   []float64
	inDegree    []float64
}

// New returns an empty Graph with no vertices.
func New() *Graph {
	return &Graph{}
}

// Grow ensures vertices 0..n-1 are addressable even if some of them
// are incident to no edge, as happens when a Louvain aggregation
// produces a community with no surviving inter- or intra-community
// edges of its own.
func (g *Graph) Grow(n int) {
	if n <= 0 {
		return
	}
	g.grow(n - 1)
}

// grow extends the adjacency storage so vertex v is addressable.
func (g *Graph) grow(v int) {
	if v < len(g.forward) {
		return
	}
	n := v + 1
	forward := make([]map[int]float64, n)
	backward := make([]map[int]float64, n)
	outDegree := make([]float64, n)
	inDegree := make([]float64, n)
	copy(forward, g.forward)
	copy(backward, g.backward)
	copy(outDegree, g.outDegree)
	copy(inDegree, g.inDegree)
	g.forward = forward
	g.backward = backward
	g.outDegree = outDegree
	g.inDegree = inDegree
}

// AddEdge accumulates weight onto the src->dst edge, creating it (and
// growing the graph to fit both endpoints) if it does not yet exist.
// weight must be strictly positive; otherwise ErrNonPositiveWeight is
// returned and the graph is left unmodified.
func (g *Graph) AddEdge(src, dst int, weight float64) error {
	if weight <= 0 {
		return fmt.Errorf("graph: edge %d->%d weight=%g: %w", src, dst, weight, ErrNonPositiveWeight)
	}

	max := src
	if dst > max {
		max = dst
	}
	g.grow(max)

	if g.forward[src] == nil {
		g.forward[src] = make(map[int]float64)
	}
	if g.backward[dst] == nil {
		g.backward[dst] = make(map[int]float64)
	}

	if _, exists := g.forward[src][dst]; !exists {
		g.edges++
	}

	g.forward[src][dst] += weight
	g.backward[dst][src] += weight
	g.outDegree[src] += weight
	g.inDegree[dst] += weight
	g.totalWeight += weight

	return nil
}

// Vertices returns the dense index sequence 0..n-1.
func (g *Graph) Vertices() []int {
	out := make([]int, len(g.forward))
	for i := range out {
		out[i] = i
	}
	return out
}

// Order returns the number of vertices currently addressable (n).
func (g *Graph) Order() int { return len(g.forward) }

// Edges returns the number of distinct edges in the graph.
func (g *Graph) Edges() int { return g.edges }

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() float64 { return g.totalWeight }

// Edge returns the weight of the src->dst edge, or 0 if absent.
func (g *Graph) Edge(src, dst int) float64 {
	if src < 0 || src >= len(g.forward) || g.forward[src] == nil {
		return 0
	}
	return g.forward[src][dst]
}

// ForwardStar returns the dst->weight entries of v's outgoing edges,
// ordered by ascending destination index for deterministic iteration.
func (g *Graph) ForwardStar(v int) []Star {
	return sortedStars(g.forward, v)
}

// BackwardStar returns the src->weight entries of v's incoming edges,
// ordered by ascending source index for deterministic iteration.
func (g *Graph) BackwardStar(v int) []Star {
	return sortedStars(g.backward, v)
}

func sortedStars(stars []map[int]float64, v int) []Star {
	if v < 0 || v >= len(stars) || stars[v] == nil {
		return nil
	}
	out := make([]Star, 0, len(stars[v]))
	for other, w := range stars[v] {
		out = append(out, Star{Vertex: other, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Vertex < out[j].Vertex })
	return out
}

// OutWeightedDegree returns the sum of outgoing edge weights of v.
func (g *Graph) OutWeightedDegree(v int) float64 {
	if v < 0 || v >= len(g.outDegree) {
		return 0
	}
	return g.outDegree[v]
}

// InWeightedDegree returns the sum of incoming edge weights of v.
func (g *Graph) InWeightedDegree(v int) float64 {
	if v < 0 || v >= len(g.inDegree) {
		return 0
	}
	return g.inDegree[v]
}
