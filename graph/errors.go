package graph

import "errors"

// Sentinel errors returned while building or querying a Graph.
var (
	// ErrNonPositiveWeight indicates an edge with weight <= 0 was presented
	// to the loader; the whole load is aborted.
	ErrNonPositiveWeight = errors.New("graph: edge weight must be strictly positive")

	// ErrMalformedLine indicates a line of the input stream could not be
	// parsed as "src dst weight".
	ErrMalformedLine = errors.New("graph: malformed edge line")

	// ErrVertexOutOfRange names a vertex index beyond the graph's current
	// size. No Graph method returns it: queries on such a vertex return
	// 0 or an empty star.
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")
)
