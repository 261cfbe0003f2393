package brandes_test

import (
	"testing"

	"github.com/arrowgraph/fastbc/brandes"
	"github.com/arrowgraph/fastbc/graph"
	"github.com/stretchr/testify/require"
)

func TestExact_SingleVertexGraph(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge(0, 0, 1)) // self loop, a valid edge; gives vertex 0 a forward star with no other reachable vertex
	bc := brandes.Exact(g, 0)
	require.Equal(t, []float64{0}, bc)
}

func TestExact_TwoVertexOneEdge(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge(0, 1, 1))
	bc := brandes.Exact(g, 0)
	require.Equal(t, []float64{0, 0}, bc)
}

func TestExact_DiamondMatchesClusterEvaluatorDiamond(t *testing.T) {
	g := graph.New()
	for _, e := range [][3]int{{0, 1, 1}, {0, 2, 1}, {1, 3, 1}, {2, 3, 1}} {
		require.NoError(t, g.AddEdge(e[0], e[1], float64(e[2])))
	}
	bc := brandes.Exact(g, 0)
	require.Equal(t, []float64{0, 0.5, 0.5, 0}, bc)
}

func TestSingleSource_UnreachableVertexContributesZero(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1)) // disconnected component

	d := brandes.SingleSource(0, g)
	require.Equal(t, 0.0, d[2])
	require.Equal(t, 0.0, d[3])
}
