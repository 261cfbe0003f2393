package sssp_test

import (
	"fmt"

	"github.com/arrowgraph/fastbc/graph"
	"github.com/arrowgraph/fastbc/internal/sssp"
)

// ExampleRun shows the predecessor-set fan-in at a diamond's sink: two
// equal-length paths from 0 to 3 give sigma[3]=2 and two predecessors.
func ExampleRun() {
	g := graph.New()
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 1)
	g.AddEdge(1, 3, 1)
	g.AddEdge(2, 3, 1)

	r := sssp.Run(0, g)

	fmt.Println(r.Dist[3], r.Sigma[3], len(r.Pred[3]))
	// Output: 2 2 2
}
