// Package bc implements the clustered-BC driver of spec §4.8 and the
// exact-BC fallback of spec §4.9: it partitions the graph with a
// louvain.Partitioner, runs clusterevaluator over every community in
// parallel, selects pivots (exactly or via kmeans aggregation), and
// scales a full single-source Brandes pass per pivot into the final
// betweenness vector, subtracting each community's already-counted
// intra contribution.
//
// Grounded on the pseudocode driver and the original fastbc
// ClusteredBrandesBC.h's progress-logging shape, adapted to
// golang.org/x/sync/errgroup fork-join regions instead of a thread
// pool, and to a typed fastbc.Error instead of C++ exceptions.
package bc
