// Package cluster implements the ClusterTriangles orchestrator: given an
// indexed triangle mesh, it runs the half-edge matcher (edgehash), the
// adjacency store (adjacency), the connected-components tracker (disjoint),
// and the graph partitioner (partition) in sequence to produce a list of
// size-bounded, spatially and topologically coherent triangle clusters.
package cluster
