// Package brandes implements the public, full-graph single-source
// dependency pass and its every-vertex-source summation, grounded on
// the same Brandes backward-accumulation shape as clusterevaluator but
// over a graph.Graph rather than a subgraph.SubGraph, with no border
// fingerprint bookkeeping.
//
// SingleSource answers "what does source contribute to every vertex's
// betweenness", the building block the driver scales and combines per
// pivot. Exact sums SingleSource over every vertex, fanned out with
// golang.org/x/sync/errgroup, and is offered as a small-graph and
// verification fallback.
package brandes
