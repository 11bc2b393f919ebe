// Package disjoint implements union-find with a non-standard rule: the
// larger index always becomes the root. Unioning triangles in ascending
// index order with UnionSequential makes the largest triangle index in
// each topological island its stable root, the island identifier the
// locality pass (partition.BuildLocalityLinks) groups sorted triangles by.
//
// Invariant: every non-root i has parent[i] >= i; roots are self-parented;
// the root of any tree is the maximum element index in that tree.
package disjoint
