package sssp

import (
	"container/heap"
	"math"

	"github.com/arrowgraph/fastbc/graph"
)

// Neighbors is the minimal view Run needs of a graph: the outgoing
// edges of a vertex. Both *graph.Graph and *subgraph.SubGraph satisfy
// it.
type Neighbors interface {
	ForwardStar(v int) []graph.Star
}

// Result holds the output of a single-source run: Dist/Sigma/Pred
// indexed by vertex id, and VisitOrder listing vertices in
// non-decreasing distance from the source — the order a Brandes-style
// backward pass must reverse before accumulating dependencies.
type Result struct {
	Dist       map[int]float64
	Sigma      map[int]float64
	Pred       map[int][]int
	VisitOrder []int
}

// Run computes shortest paths from src over g using a min-priority
// queue ordered by (dist, vertex index) — the index tiebreak is what
// makes pop order, and therefore pivot selection further downstream,
// reproducible regardless of scheduling (spec §9). sigma[src]=1,
// dist[src]=0; an unreachable vertex never appears in Dist/Sigma/Pred.
func Run(src int, g Neighbors) *Result {
	dist := map[int]float64{src: 0}
	sigma := map[int]float64{src: 1}
	pred := map[int][]int{}
	visited := map[int]bool{}
	visitOrder := make([]int, 0)

	pq := make(priorityQueue, 0, 1)
	heap.Init(&pq)
	heap.Push(&pq, item{vertex: src, dist: 0})

	for pq.Len() > 0 {
		top := heap.Pop(&pq).(item)
		v := top.vertex
		if visited[v] {
			continue
		}
		visited[v] = true
		visitOrder = append(visitOrder, v)

		for _, e := range g.ForwardStar(v) {
			w := e.Vertex
			newDist := dist[v] + e.Weight

			curr, known := dist[w]
			if !known || newDist < curr {
				dist[w] = newDist
				sigma[w] = 0
				pred[w] = nil
				curr = newDist
				known = true
				heap.Push(&pq, item{vertex: w, dist: newDist})
			}

			if known && newDist == curr {
				pred[w] = append(pred[w], v)
				sigma[w] += sigma[v]
			}
		}
	}

	return &Result{Dist: dist, Sigma: sigma, Pred: pred, VisitOrder: visitOrder}
}

// DistOrInf returns r.Dist[v], or +Inf if v was never reached.
func (r *Result) DistOrInf(v int) float64 {
	if d, ok := r.Dist[v]; ok {
		return d
	}
	return math.Inf(1)
}

type item struct {
	vertex int
	dist   float64
}

// priorityQueue is a min-heap ordered by (dist, vertex index), the
// total-order tiebreak spec §9 calls essential for reproducibility.
type priorityQueue []item

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].vertex < pq[j].vertex
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(item)) }

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
