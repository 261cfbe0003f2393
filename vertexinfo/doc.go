// Package vertexinfo implements VertexInfo, the border fingerprint of
// spec §3: two parallel length-k vectors holding, for a vertex inside
// some community C with ordered borders b0..bk-1, the shortest-path
// length and shortest-path count from that vertex to each border.
//
// VertexInfo exposes the small arithmetic surface spec §9 calls out as
// sufficient (+=, scalar /=, Normalize, SquaredDistance,
// ContributionDistance, Compare) on top of
// gonum.org/v1/gonum/floats for the elementwise vector work.
package vertexinfo
