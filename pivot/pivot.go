package pivot

import (
	"github.com/arrowgraph/fastbc/vertexinfo"
)

// Options configures Select.
type Options struct {
	// AllowBorderPivots makes a class with only border members
	// contribute its first member as pivot instead of being skipped.
	AllowBorderPivots bool
}

// Option configures Select.
type Option func(*Options)

// WithAllowBorderPivots enables the allow-border-pivot policy: a class
// whose every member is a border vertex still contributes a pivot
// (its first member, in vertex-set order) instead of being dropped.
// Default is to skip such classes.
func WithAllowBorderPivots() Option {
	return func(o *Options) { o.AllowBorderPivots = true }
}

// Select groups members by normalized VertexInfo equivalence class and
// returns, for each class that yields a pivot, the chosen pivot vertex
// and that class's cardinality. bc is the current global betweenness
// vector; vi is the global VertexInfo array, normalized in place for
// every member as a side effect; borderSet marks which members are
// border vertices of their community.
//
// Class iteration follows members' order, so BC ties among
// non-border candidates are broken by the lower vertex index.
func Select(bc []float64, vi []*vertexinfo.VertexInfo, members []int, borderSet map[int]bool, opts ...Option) (pivots []int, weights []float64) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, v := range members {
		vi[v].Normalize()
	}

	type class struct {
		rep     int
		members []int
	}
	var classes []class

	for _, v := range members {
		placed := false
		for i := range classes {
			if vi[v].Equal(vi[classes[i].rep]) {
				classes[i].members = append(classes[i].members, v)
				placed = true
				break
			}
		}
		if !placed {
			classes = append(classes, class{rep: v, members: []int{v}})
		}
	}

	for _, c := range classes {
		bestV := -1
		bestBC := 0.0
		for _, v := range c.members {
			if borderSet[v] {
				continue
			}
			if bestV == -1 || bc[v] < bestBC {
				bestV = v
				bestBC = bc[v]
			}
		}

		if bestV == -1 {
			if !cfg.AllowBorderPivots {
				continue
			}
			bestV = c.members[0]
		}

		pivots = append(pivots, bestV)
		weights = append(weights, float64(len(c.members)))
	}

	return pivots, weights
}
