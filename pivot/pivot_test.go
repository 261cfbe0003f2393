package pivot_test

import (
	"testing"

	"github.com/arrowgraph/fastbc/pivot"
	"github.com/arrowgraph/fastbc/vertexinfo"
	"github.com/stretchr/testify/require"
)

func vi(spCnt, spLen []float64) *vertexinfo.VertexInfo {
	v := vertexinfo.New(len(spCnt))
	for i := range spCnt {
		v.SetSPCount(i, spCnt[i])
		v.SetSPLength(i, spLen[i])
	}
	return v
}

// Members {0,1,2,3,4}: VI(0)==VI(2), VI(1)==VI(3), VI(4) alone.
// bc = [1, 2, 2, 1.5, 1]. No member is a border.
func TestSelect_ClassGroupingAndMinBCPivots(t *testing.T) {
	bc := []float64{1, 2, 2, 1.5, 1}
	vis := []*vertexinfo.VertexInfo{
		vi([]float64{1, 1, 1}, []float64{3, 3, 3}),
		vi([]float64{2, 2, 2}, []float64{5, 5, 5}),
		vi([]float64{1, 1, 1}, []float64{3, 3, 3}),
		vi([]float64{2, 2, 2}, []float64{5, 5, 5}),
		vi([]float64{9, 9, 9}, []float64{1, 1, 1}),
	}
	members := []int{0, 1, 2, 3, 4}
	borderSet := map[int]bool{}

	pivots, weights := pivot.Select(bc, vis, members, borderSet)

	require.Equal(t, []int{0, 3, 4}, pivots)
	require.Equal(t, []float64{2, 2, 1}, weights)
}

func TestSelect_BorderOnlyClassSkippedByDefault(t *testing.T) {
	bc := []float64{1, 2}
	vis := []*vertexinfo.VertexInfo{
		vi([]float64{1}, []float64{1}),
		vi([]float64{1}, []float64{1}),
	}
	members := []int{0, 1}
	borderSet := map[int]bool{0: true, 1: true}

	pivots, weights := pivot.Select(bc, vis, members, borderSet)
	require.Empty(t, pivots)
	require.Empty(t, weights)
}

func TestSelect_AllowBorderPivotsPicksFirstMember(t *testing.T) {
	bc := []float64{1, 2}
	vis := []*vertexinfo.VertexInfo{
		vi([]float64{1}, []float64{1}),
		vi([]float64{1}, []float64{1}),
	}
	members := []int{0, 1}
	borderSet := map[int]bool{0: true, 1: true}

	pivots, weights := pivot.Select(bc, vis, members, borderSet, pivot.WithAllowBorderPivots())
	require.Equal(t, []int{0}, pivots)
	require.Equal(t, []float64{2}, weights)
}
