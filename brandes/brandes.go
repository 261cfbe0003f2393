package brandes

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/arrowgraph/fastbc/graph"
	"github.com/arrowgraph/fastbc/internal/sssp"
)

// SingleSource returns the dense dependency vector contributed by
// source: d[v] is the sum of delta values classical Brandes
// backward-accumulation assigns to v after a shortest-path run rooted
// at source, over the whole graph g.
func SingleSource(source int, g *graph.Graph) []float64 {
	r := sssp.Run(source, g)
	d := make([]float64, g.Order())

	delta := make(map[int]float64, len(r.VisitOrder))
	for _, w := range r.VisitOrder {
		delta[w] = 0
	}

	for i := len(r.VisitOrder) - 1; i >= 0; i-- {
		w := r.VisitOrder[i]
		for _, v := range r.Pred[w] {
			delta[v] += r.Sigma[v] / r.Sigma[w] * (1 + delta[w])
		}
		if w != source {
			d[w] = delta[w]
		}
	}

	return d
}

// Exact computes the full betweenness vector by running SingleSource
// from every vertex of g and summing the results, one goroutine per
// source, each adding its dependency vector into the result under a
// mutex as soon as it is computed (not at region end). workers caps
// concurrency; 0 means unbounded.
func Exact(g *graph.Graph, workers int) []float64 {
	n := g.Order()
	bc := make([]float64, n)
	var mu sync.Mutex

	g2, _ := errgroup.WithContext(context.Background())
	if workers > 0 {
		g2.SetLimit(workers)
	}

	for _, source := range g.Vertices() {
		source := source
		g2.Go(func() error {
			d := SingleSource(source, g)
			mu.Lock()
			for v, dv := range d {
				bc[v] += dv
			}
			mu.Unlock()
			return nil
		})
	}

	_ = g2.Wait() // SingleSource never errors
	return bc
}
