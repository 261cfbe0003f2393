package clusterevaluator

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/arrowgraph/fastbc/internal/sssp"
	"github.com/arrowgraph/fastbc/subgraph"
	"github.com/arrowgraph/fastbc/vertexinfo"
)

// Run evaluates community S: for every member vertex, it runs a
// shortest-path source (internal/sssp), backward-accumulates classical
// Brandes dependencies into bc (indexed by global vertex id), and
// writes a VertexInfo fingerprint into vi at the source's global index.
//
// bc and vi must be pre-sized to at least the reference graph's order;
// Run only ever writes index positions belonging to S, so concurrently
// evaluated communities with disjoint vertex sets may share both slices
// without further locking. workers caps how many member sources run concurrently;
// 0 means unbounded.
func Run(s *subgraph.SubGraph, bc []float64, vi []*vertexinfo.VertexInfo, workers int) error {
	members := s.Vertices()
	borders := s.Borders()

	var mu sync.Mutex
	g, _ := errgroup.WithContext(context.Background())
	if workers > 0 {
		g.SetLimit(workers)
	}

	for _, source := range members {
		source := source
		g.Go(func() error {
			r := sssp.Run(source, s)

			delta := make(map[int]float64, len(members))
			for _, w := range r.VisitOrder {
				delta[w] = 0
			}

			for i := len(r.VisitOrder) - 1; i >= 0; i-- {
				w := r.VisitOrder[i]
				for _, v := range r.Pred[w] {
					delta[v] += r.Sigma[v] / r.Sigma[w] * (1 + delta[w])
				}
			}

			mu.Lock()
			for _, w := range r.VisitOrder {
				if w != source {
					bc[w] += delta[w]
				}
			}
			mu.Unlock()

			info := vertexinfo.New(len(borders))
			for i, b := range borders {
				d, reached := r.Dist[b]
				if !reached {
					info.SetSPLength(i, 0)
					info.SetSPCount(i, 0)
					continue
				}
				info.SetSPLength(i, d)
				info.SetSPCount(i, r.Sigma[b])
			}
			vi[source] = info

			return nil
		})
	}

	return g.Wait()
}
