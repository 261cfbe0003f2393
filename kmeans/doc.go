// Package kmeans implements the optional k-means++ pivot aggregation
// of spec §4.6: it collapses a community's exact PivotSelector classes
// down to k super-classes using a deterministic, RNG-free
// farthest-so-far seeding followed by mean-then-nearest-vertex
// iteration, both distance functions borrowed from
// vertexinfo.ContributionDistance.
package kmeans
