package louvain_test

import (
	"testing"

	"github.com/arrowgraph/fastbc/graph"
	"github.com/arrowgraph/fastbc/louvain"
	"github.com/stretchr/testify/require"
)

// Two disconnected, internally dense triangles: {0,1,2} and {3,4,5}.
// With zero inter-group weight, the highest-modularity partition must
// be exactly these two groups, regardless of seed.
func buildTwoTriangles(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	triangle := func(a, b, c int) {
		for _, e := range [][2]int{{a, b}, {b, c}, {c, a}, {b, a}, {c, b}, {a, c}} {
			require.NoError(t, g.AddEdge(e[0], e[1], 1))
		}
	}
	triangle(0, 1, 2)
	triangle(3, 4, 5)
	return g
}

func TestPartition_TwoDisjointTriangles(t *testing.T) {
	g := buildTwoTriangles(t)
	ev := louvain.New(louvain.WithSeeds(1, 2, 3), louvain.WithPrecision(0.0001))

	partition, err := ev.Partition(g)
	require.NoError(t, err)

	var communities [][]int
	for _, c := range partition {
		cp := append([]int(nil), c...)
		communities = append(communities, cp)
	}

	require.Len(t, communities, 2)
	total := 0
	for _, c := range communities {
		total += len(c)
	}
	require.Equal(t, 6, total)

	seen := map[int]bool{}
	for _, c := range communities {
		for _, v := range c {
			require.False(t, seen[v], "vertex %d assigned twice", v)
			seen[v] = true
		}
	}
	for v := 0; v < 6; v++ {
		require.True(t, seen[v], "vertex %d missing from partition", v)
	}

	// Each community is exactly one triangle, never split across both.
	for _, c := range communities {
		inFirstHalf := 0
		for _, v := range c {
			if v < 3 {
				inFirstHalf++
			}
		}
		require.True(t, inFirstHalf == 0 || inFirstHalf == len(c))
	}
}

func TestPartition_CoversEveryVertexExactlyOnce(t *testing.T) {
	g := graph.New()
	for _, e := range [][3]int{{0, 1, 2}, {1, 2, 1}, {2, 0, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1], float64(e[2])))
	}
	ev := louvain.New()
	partition, err := ev.Partition(g)
	require.NoError(t, err)

	total := 0
	seen := map[int]bool{}
	for _, c := range partition {
		total += len(c)
		for _, v := range c {
			require.False(t, seen[v])
			seen[v] = true
		}
	}
	require.Equal(t, 3, total)
}
