// Package partition implements the graph partitioner: it builds a weighted
// triangle adjacency graph augmented with Morton-derived locality links,
// then recursively bisects it into clusters of at most MaxPartitionSize
// triangles; MinPartitionSize is enforced only as far as a single
// boundary-shift rebalancing pass reaches.
//
// Build order, as driven by the cluster orchestrator:
//
//  1. BuildLocalityLinks — Morton-sort triangles, compute island ranges from
//     a finalized disjoint.Set, emit up to 5 nearest cross-island locality
//     links per small-island triangle.
//  2. NewGraph / AddAdjacency / AddLocalityLinks — the caller (the cluster
//     package) walks the sorted triangles, using these as thin CSR-append
//     primitives to build one GraphData for the whole mesh.
//  3. PartitionStrict — recursively bisects that graph (via the in-module
//     Bisect kernel, kernel.go) down to size-bounded, spatially-contiguous
//     ranges over the permuted Indices array.
package partition
