package vertexinfo

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Penalty is the fixed contribution added by ContributionDistance for
// every coordinate where exactly one of the two operands has SPCount
// zero (spec §3, original fastbc FASTBC_BRANDES_VERTEXINFO_PENALTY).
const Penalty = 1000.0

// VertexInfo holds a vertex's border fingerprint: the shortest-path
// length and shortest-path count to each of a community's k ordered
// borders. A border with no intra-community path is recorded as spLen 0
// (substituted from +Inf, per spec §4.4 step 3) with spCnt 0; a zero
// spLen with a non-zero spCnt is a genuine distance of 0.
type VertexInfo struct {
	spLen []float64
	spCnt []float64
}

// New allocates a VertexInfo with borderCount border slots, all zero.
func New(borderCount int) *VertexInfo {
	return &VertexInfo{
		spLen: make([]float64, borderCount),
		spCnt: make([]float64, borderCount),
	}
}

// Borders returns the number of border slots (k).
func (vi *VertexInfo) Borders() int { return len(vi.spLen) }

// SetSPLength sets the shortest-path length to border i.
func (vi *VertexInfo) SetSPLength(i int, length float64) { vi.spLen[i] = length }

// SPLength returns the shortest-path length to border i.
func (vi *VertexInfo) SPLength(i int) float64 { return vi.spLen[i] }

// SetSPCount sets the shortest-path count to border i.
func (vi *VertexInfo) SetSPCount(i int, count float64) { vi.spCnt[i] = count }

// SPCount returns the shortest-path count to border i.
func (vi *VertexInfo) SPCount(i int) float64 { return vi.spCnt[i] }

// MinSPLength returns the minimum spLen across all borders, or 0 if
// there are no borders (an isolated community, spec §4.4 failure
// semantics).
func (vi *VertexInfo) MinSPLength() float64 {
	if len(vi.spLen) == 0 {
		return 0
	}
	return floats.Min(vi.spLen)
}

// Normalize subtracts MinSPLength from every spLen coordinate,
// in place. Normalize is idempotent and preserves SPCount (spec §8).
func (vi *VertexInfo) Normalize() {
	if len(vi.spLen) == 0 {
		return
	}
	min := vi.MinSPLength()
	floats.AddConst(-min, vi.spLen)
}

// Add performs element-wise += with other, in place, returning vi.
func (vi *VertexInfo) Add(other *VertexInfo) *VertexInfo {
	mustSameBorders(vi, other)
	floats.Add(vi.spLen, other.spLen)
	floats.Add(vi.spCnt, other.spCnt)
	return vi
}

// Scale performs scalar *= factor on both vectors, in place, returning
// vi. Pass 1/n to implement scalar /=.
func (vi *VertexInfo) Scale(factor float64) *VertexInfo {
	floats.Scale(factor, vi.spLen)
	floats.Scale(factor, vi.spCnt)
	return vi
}

// Clone returns a deep copy of vi.
func (vi *VertexInfo) Clone() *VertexInfo {
	c := New(len(vi.spLen))
	copy(c.spLen, vi.spLen)
	copy(c.spCnt, vi.spCnt)
	return c
}

// SquaredDistance returns the sum of squared componentwise differences
// across both spLen and spCnt. It is symmetric and non-negative (spec
// §8).
func (vi *VertexInfo) SquaredDistance(other *VertexInfo) float64 {
	mustSameBorders(vi, other)
	var sum float64
	for i := range vi.spLen {
		dl := vi.spLen[i] - other.spLen[i]
		dc := vi.spCnt[i] - other.spCnt[i]
		sum += dl*dl + dc*dc
	}
	return sum
}

// ContributionDistance is SquaredDistance except that any coordinate
// where exactly one operand has SPCount zero contributes the fixed
// Penalty in place of its squared difference, and a coordinate where
// both operands have SPCount zero contributes 0 (spec §3). When no
// coordinate has a zero SPCount it equals SquaredDistance; each
// exactly-one-zero coordinate adds Penalty instead of its own squared
// difference.
func (vi *VertexInfo) ContributionDistance(other *VertexInfo) float64 {
	mustSameBorders(vi, other)
	var sum float64
	for i := range vi.spLen {
		a, b := vi.spCnt[i], other.spCnt[i]
		if a == 0 && b == 0 {
			continue
		}
		if a > 0 && b > 0 {
			dl := vi.spLen[i] - other.spLen[i]
			dc := a - b
			sum += dl*dl + dc*dc
			continue
		}
		sum += Penalty
	}
	return sum
}

// Compare returns the sign of the unpadded lexicographic comparison of
// (spCnt, spLen): the spCnt vectors are compared first, coordinate by
// coordinate, and only if they are identical are the spLen vectors
// compared the same way; 0 if every coordinate matches. Intended to be
// called after Normalize on both operands.
func (vi *VertexInfo) Compare(other *VertexInfo) int {
	mustSameBorders(vi, other)
	for i := range vi.spCnt {
		if d := vi.spCnt[i] - other.spCnt[i]; d != 0 {
			return sign(d)
		}
	}
	for i := range vi.spLen {
		if d := vi.spLen[i] - other.spLen[i]; d != 0 {
			return sign(d)
		}
	}
	return 0
}

// Equal reports whether vi and other compare equal (spec §3 class
// equality).
func (vi *VertexInfo) Equal(other *VertexInfo) bool {
	return vi.Compare(other) == 0
}

func sign(d float64) int {
	if d < 0 {
		return -1
	}
	return 1
}

func mustSameBorders(a, b *VertexInfo) {
	if len(a.spLen) != len(b.spLen) {
		panic(fmt.Sprintf("vertexinfo: border count mismatch %d != %d", len(a.spLen), len(b.spLen)))
	}
}
