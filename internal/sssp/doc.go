// Package sssp implements the shared single-source shortest-paths
// routine of spec §4.3: a Dijkstra variant tracking, for every
// reachable vertex, the full set of immediate predecessors on any
// shortest path (not just one), the shortest-path count sigma, and a
// visit order suitable for Brandes-style backward dependency
// accumulation.
//
// It is shared by clusterevaluator (over a subgraph.SubGraph) and
// brandes (over the full graph.Graph), grounded on the heap-based
// lazy-decrease-key shape of the teacher's dijkstra package and on the
// original fastbc implementation's _dijkstra_SSSP (predecessor-set
// accumulation, index-tiebroken priority queue for reproducibility
// under parallelism).
package sssp
