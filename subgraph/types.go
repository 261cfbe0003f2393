package subgraph

import (
	"fmt"
	"sort"

	"github.com/arrowgraph/fastbc/graph"
)

// Options configures SubGraph construction.
type Options struct {
	// Strict turns ErrInconsistentSubGraph and the zero-border isolated
	// community case into hard failures instead of warnings.
	Strict bool
}

// Option configures SubGraph construction.
type Option func(*Options)

// WithStrict enables strict mode: a vertex with zero edges inside the
// subgraph, or a whole subgraph with zero border vertices, aborts
// construction with ErrInconsistentSubGraph instead of being recorded
// as a warning. Default is warning (spec §4.2).
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// SubGraph is an induced view of a vertex subset U over a reference
// graph.Graph. It is a borrowed reference: its lifetime is tied to the
// caller holding on to the reference graph, and it never copies
// adjacency.
type SubGraph struct {
	ref *graph.Graph

	vertices  []int // ascending, the membership iteration order
	memberSet map[int]struct{}

	borders   []int // ascending, deterministic VertexInfo layout order
	borderSet map[int]struct{}

	trimmedForward  map[int][]graph.Star
	trimmedBackward map[int][]graph.Star

	edgeCount int
	warnings  []string
}

// New builds the induced view of vertices over ref. vertices need not
// be sorted; New sorts and de-duplicates them. A single-vertex subgraph
// is permitted.
func New(vertices []int, ref *graph.Graph, opts ...Option) (*SubGraph, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	members := append([]int(nil), vertices...)
	sort.Ints(members)
	members = dedupe(members)

	memberSet := make(map[int]struct{}, len(members))
	for _, v := range members {
		memberSet[v] = struct{}{}
	}

	sg := &SubGraph{
		ref:             ref,
		vertices:        members,
		memberSet:       memberSet,
		borderSet:       make(map[int]struct{}),
		trimmedForward:  make(map[int][]graph.Star),
		trimmedBackward: make(map[int][]graph.Star),
	}

	for _, v := range members {
		isBorder := false
		connections := 0

		fs := ref.ForwardStar(v)
		trimmedFS := make([]graph.Star, 0, len(fs))
		for _, e := range fs {
			if _, inside := memberSet[e.Vertex]; inside {
				trimmedFS = append(trimmedFS, e)
				connections++
			} else {
				isBorder = true
			}
		}
		sg.edgeCount += len(trimmedFS)
		if isBorder {
			sg.trimmedForward[v] = trimmedFS
		}

		bs := ref.BackwardStar(v)
		trimmedBS := make([]graph.Star, 0, len(bs))
		for _, e := range bs {
			if _, inside := memberSet[e.Vertex]; inside {
				trimmedBS = append(trimmedBS, e)
				connections++
			} else {
				isBorder = true
			}
		}
		if isBorder {
			sg.trimmedBackward[v] = trimmedBS
			sg.borderSet[v] = struct{}{}
			sg.borders = append(sg.borders, v)
		}

		if isBorder && connections == 0 {
			msg := fmt.Sprintf("vertex %d has no edges inside the subgraph", v)
			if cfg.Strict {
				return nil, fmt.Errorf("subgraph: %s: %w", msg, ErrInconsistentSubGraph)
			}
			sg.warnings = append(sg.warnings, msg)
		}
	}
	sort.Ints(sg.borders)

	if len(sg.borders) == 0 && len(members) > 1 {
		msg := "subgraph has no border vertices (isolated community)"
		if cfg.Strict {
			return nil, fmt.Errorf("subgraph: %s: %w", msg, ErrInconsistentSubGraph)
		}
		sg.warnings = append(sg.warnings, msg)
	}

	return sg, nil
}

func dedupe(sorted []int) []int {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Vertices returns U in ascending order.
func (sg *SubGraph) Vertices() []int { return sg.vertices }

// Borders returns borders(S) = {v in U : v has >=1 edge to V\U} in
// ascending order, the canonical VertexInfo layout order.
func (sg *SubGraph) Borders() []int { return sg.borders }

// IsBorder reports whether v is a border vertex of this subgraph.
func (sg *SubGraph) IsBorder(v int) bool {
	_, ok := sg.borderSet[v]
	return ok
}

// IsMember reports whether v belongs to U.
func (sg *SubGraph) IsMember(v int) bool {
	_, ok := sg.memberSet[v]
	return ok
}

// Edges returns the number of edges with both endpoints in U.
func (sg *SubGraph) Edges() int { return sg.edgeCount }

// ForwardStar returns v's outgoing edges restricted to U: the trimmed
// copy for border vertices, or the reference graph's star verbatim for
// non-border vertices (every edge of which already stays inside U).
func (sg *SubGraph) ForwardStar(v int) []graph.Star {
	if trimmed, ok := sg.trimmedForward[v]; ok {
		return trimmed
	}
	return sg.ref.ForwardStar(v)
}

// BackwardStar returns v's incoming edges restricted to U, mirroring
// ForwardStar.
func (sg *SubGraph) BackwardStar(v int) []graph.Star {
	if trimmed, ok := sg.trimmedBackward[v]; ok {
		return trimmed
	}
	return sg.ref.BackwardStar(v)
}

// Reference returns the graph this view was built from.
func (sg *SubGraph) Reference() *graph.Graph { return sg.ref }

// Warnings returns the non-fatal inconsistencies recorded during
// construction (empty unless WithStrict was omitted and an isolated
// vertex or isolated community was found).
func (sg *SubGraph) Warnings() []string { return sg.warnings }
