package subgraph_test

import (
	"testing"

	"github.com/arrowgraph/fastbc/graph"
	"github.com/arrowgraph/fastbc/subgraph"
	"github.com/stretchr/testify/require"
)

func buildRefGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	edges := [][3]float64{
		{0, 1, 4}, {0, 2, 8}, {0, 3, 5},
		{1, 3, 3}, {1, 4, 1},
		{2, 1, 2}, {2, 5, 9},
		{3, 4, 2},
		{6, 7, 1}, {7, 6, 1}, // vertex 6/7 live outside the community under test
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}
	return g
}

func TestBorders_AreExactlyTheSubsetWithExternalEdges(t *testing.T) {
	g := buildRefGraph(t)
	sg, err := subgraph.New([]int{0, 1, 2, 3, 4}, g)
	require.NoError(t, err)

	// 2 is a border (2->5 leaves U), 3 is a border? 3's edges: 1->3 (in), 3->4 (in): no external.
	// 0,1,3,4 have only internal edges except 2 which reaches 5.
	require.ElementsMatch(t, []int{2}, sg.Borders())
	require.True(t, sg.IsBorder(2))
	require.False(t, sg.IsBorder(0))
}

func TestForwardStar_TrimsExternalEdgesOnBorder(t *testing.T) {
	g := buildRefGraph(t)
	sg, err := subgraph.New([]int{0, 1, 2, 3, 4}, g)
	require.NoError(t, err)

	fs := sg.ForwardStar(2)
	for _, s := range fs {
		require.True(t, sg.IsMember(s.Vertex), "forward star must not leak external vertex %d", s.Vertex)
	}
}

func TestNonBorderDelegatesToReference(t *testing.T) {
	g := buildRefGraph(t)
	sg, err := subgraph.New([]int{0, 1, 2, 3, 4}, g)
	require.NoError(t, err)

	require.Equal(t, g.ForwardStar(0), sg.ForwardStar(0))
}

// TestInconsistentSubGraph_Strict covers spec Scenario D: vertex set
// {0,1,2,3,6} where vertex 6 has no edges inside the set raises
// ErrInconsistentSubGraph under WithStrict.
func TestInconsistentSubGraph_Strict(t *testing.T) {
	g := buildRefGraph(t)
	_, err := subgraph.New([]int{0, 1, 2, 3, 6}, g, subgraph.WithStrict())
	require.ErrorIs(t, err, subgraph.ErrInconsistentSubGraph)
}

func TestInconsistentSubGraph_DefaultIsWarning(t *testing.T) {
	g := buildRefGraph(t)
	sg, err := subgraph.New([]int{0, 1, 2, 3, 6}, g)
	require.NoError(t, err)
	require.NotEmpty(t, sg.Warnings())
}

func TestSingleVertexSubGraph(t *testing.T) {
	g := buildRefGraph(t)
	sg, err := subgraph.New([]int{4}, g)
	require.NoError(t, err)
	require.Equal(t, []int{4}, sg.Vertices())
}

func TestEdgesCountsOnlyBothEndpointsInside(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	sg, err := subgraph.New([]int{0, 1, 2}, g)
	require.NoError(t, err)
	require.Equal(t, 2, sg.Edges())
}
