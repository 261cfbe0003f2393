// Package clusterevaluator implements the intra-community pass of spec
// §4.4: for a single community's SubGraph, it runs a shortest-path
// source from every member vertex, accumulates classical Brandes
// dependencies into a shared, global-indexed betweenness vector, and
// builds each member's VertexInfo border fingerprint along the way.
//
// Per-source work is fanned out with golang.org/x/sync/errgroup, one
// goroutine per source, each folding its dependency contribution into
// a private accumulator that it adds into the shared BC vector under a
// mutex, once, when its source is done; the merge is not deferred to
// region end — grounded on the original fastbc's
// DijkstraClusterEvaluator.h, whose OpenMP parallel-for uses
// private(delta) reduction(+:_clusterBC[...]) for the same shape.
package clusterevaluator
