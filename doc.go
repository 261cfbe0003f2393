// Package fastbc computes betweenness centrality on directed,
// positively-weighted graphs using an accelerated variant of Brandes'
// algorithm: Louvain community detection, exact intra-community BC via
// ClusterEvaluator, topological-class pivot selection, and a
// single-source Brandes pass run only from those pivots.
//
// Subpackages:
//
//	graph/            — dense-index directed weighted graph container
//	subgraph/         — induced community view with border detection
//	vertexinfo/       — per-vertex border fingerprint and its arithmetic
//	internal/sssp/    — shared Dijkstra-with-predecessor-sets routine
//	clusterevaluator/ — intra-community BC + fingerprint pass
//	brandes/          — full-graph single-source dependency + exact fallback
//	pivot/            — exact topological-class pivot selection
//	kmeans/           — optional k-means++ pivot aggregation
//	louvain/          — directed-modularity community detector
//	bc/               — the clustered-BC driver tying every stage together
//	cmd/fastbc/       — CLI wrapper
package fastbc
