// Package subgraph implements the induced-view component of spec §4.2:
// given a vertex subset U of a reference graph.Graph, it computes the
// border set (vertices of U with at least one incident edge leaving U
// in either direction) and trimmed forward/backward stars for those
// border vertices. Non-border vertices delegate directly to the
// reference graph's stars, since every one of their edges already
// stays inside U.
//
// A SubGraph is a view, not an owner: it holds a reference to the
// graph.Graph it was built from and never copies adjacency (spec §9).
package subgraph
