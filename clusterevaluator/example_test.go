package clusterevaluator_test

import (
	"fmt"

	"github.com/arrowgraph/fastbc/clusterevaluator"
	"github.com/arrowgraph/fastbc/graph"
	"github.com/arrowgraph/fastbc/subgraph"
	"github.com/arrowgraph/fastbc/vertexinfo"
)

// ExampleRun evaluates the diamond community {0,1,2,3}; vertex 3 is
// its sole border, reached from 0 by two equal-length intra-community
// paths, so vertex 0's fingerprint records SPCount=2, and intra-BC
// splits evenly across 1 and 2.
func ExampleRun() {
	g := graph.New()
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 1)
	g.AddEdge(1, 3, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 4, 1)

	sg, err := subgraph.New([]int{0, 1, 2, 3}, g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	bc := make([]float64, g.Order())
	vi := make([]*vertexinfo.VertexInfo, g.Order())
	if err := clusterevaluator.Run(sg, bc, vi, 0); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(bc[:4], vi[0].SPLength(0), vi[0].SPCount(0))
	// Output: [0 0.5 0.5 0] 2 2
}
