// Package graph implements the directed, positively-weighted graph
// container that anchors the rest of fastbc.
//
// Vertices are dense integer indices 0..n, growing the adjacency arrays
// to max(src,dst)+1 as edges are loaded. Every vertex exposes a
// forward star (dst -> weight) and a backward star (src -> weight),
// both iterated in ascending key order to give deterministic traversal
// for every downstream algorithm (Louvain, the cluster evaluator,
// Brandes). Duplicate edges presented on input accumulate their
// weights; any edge with weight <= 0 is rejected and aborts the load.
//
// Graph is read-only once built: there is no mutex here, unlike the
// teacher's core.Graph, because spec §5 guarantees the graph is never
// mutated while a BC computation is in flight.
package graph
