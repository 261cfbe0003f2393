package subgraph

import "errors"

// ErrInconsistentSubGraph indicates a vertex of the requested subset
// has no edge at all remaining inside the induced view — every one of
// its edges in the reference graph leaves the subset. Under WithStrict()
// this aborts construction; otherwise it is reported through
// SubGraph.Warnings and the vertex is kept (it behaves as an isolated
// SSSP source within the view).
var ErrInconsistentSubGraph = errors.New("subgraph: vertex has no edges inside the subgraph")
