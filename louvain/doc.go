// Package louvain implements the community-detection collaborator of
// spec §6.1: repeated local moves of vertices between communities to
// maximize directed modularity, followed by graph aggregation, until
// no move improves modularity. Multiple seeded instances run in
// parallel at each full pass; the highest-modularity result wins.
//
// Grounded on the multi-instance, best-of-modularity driver shape of
// the original fastbc LouvainEvaluator (parallel seeded Partition
// instances, renumbered communities, partition2graph aggregation,
// loop until no improvement), adapted to Go's errgroup-based
// fork-join idiom rather than OpenMP, and to a community-level
// closed-form modularity/gain computation instead of the reference's
// node-by-node bookkeeping.
package louvain
