package cluster

import "github.com/vireo-graphics/trimesh-cluster/vec3"

// Mesh is the input contract from the mesh loader: a pool of vertex
// positions and a triangle index stream, with optional per-triangle
// material ids.
type Mesh struct {
	// Positions holds every vertex position, indexed by Indices.
	Positions []vec3.Vec3
	// Indices is the triangle index stream; length must be divisible by 3,
	// each entry in [0, len(Positions)).
	Indices []uint32
	// MaterialIndexes is one entry per triangle (length len(Indices)/3), or
	// empty to disable material-aware partitioning.
	MaterialIndexes []int32
	// Bounds encloses every position in Positions.
	Bounds vec3.AABB
}

// TriangleCount returns the number of triangles in the mesh.
func (m Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Cluster is one emitted partition: a contiguous run of triangles suitable
// for downstream simplification, bounding, and streaming.
type Cluster struct {
	// Indices holds the cluster's triangles' vertex indices, 3 per
	// triangle, in the orchestrator's permuted order.
	Indices []uint32
	// MaterialIndexes carries through the source mesh's per-triangle
	// material id for each triangle in Indices, parallel to it in units of
	// one entry per triangle (empty if the source mesh had none).
	MaterialIndexes []int32
	// Bounds is this cluster's own axis-aligned bounding box.
	Bounds vec3.AABB
	// GUID is a globally unique identifier for this cluster.
	GUID uint64
	// MipLevel is the level-of-detail tier this cluster belongs to; always
	// 0 at this clustering stage.
	MipLevel uint32
}

// TriangleCount returns the number of triangles this cluster carries.
func (c Cluster) TriangleCount() int { return len(c.Indices) / 3 }
