// Package trimeshcluster turns an indexed triangle mesh into a flat list of
// small, locality-coherent clusters suitable for streaming and simplification.
//
// The pipeline is split across seven subpackages:
//
//	htable/     — open-addressed bucket-to-index multimap
//	edgehash/   — half-edge position hashing and opposite-winding matching
//	adjacency/  — per-half-edge neighbor resolution (direct slot + overflow)
//	disjoint/   — union-find over triangles, used to track connected islands
//	morton/     — Z-order codes and a 3-pass radix sort for spatial locality
//	partition/  — locality-augmented adjacency graph and recursive bisection
//	cluster/    — ClusterTriangles, the orchestrator tying the above together
//
// A mesh of T triangles is hashed, matched, and unioned into islands; a
// locality-augmented adjacency graph over those triangles is then
// recursively bisected into contiguous runs of roughly constant size. Each
// run is materialized as a Cluster with its own bounds and GUID.
//
//	go get github.com/vireo-graphics/trimesh-cluster/cluster
package trimeshcluster
