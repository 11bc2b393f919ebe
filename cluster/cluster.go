package cluster

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/vireo-graphics/trimesh-cluster/adjacency"
	"github.com/vireo-graphics/trimesh-cluster/disjoint"
	"github.com/vireo-graphics/trimesh-cluster/edgehash"
	"github.com/vireo-graphics/trimesh-cluster/parallelfor"
	"github.com/vireo-graphics/trimesh-cluster/partition"
	"github.com/vireo-graphics/trimesh-cluster/vec3"
)

// ClusterTriangles partitions mesh into size-bounded, topologically and
// spatially coherent clusters: half-edges are hashed and matched into an
// adjacency store, triangles are unioned into islands, and a
// locality-augmented adjacency graph over the Morton-sorted triangles is
// recursively bisected. Returns one Cluster per emitted range. Empty input
// (zero triangles) is not an error and yields an empty, nil-error result.
func ClusterTriangles(ctx context.Context, mesh Mesh, opts ...Option) ([]Cluster, error) {
	if len(mesh.Indices)%3 != 0 {
		return nil, ErrIndicesNotTriangulated
	}
	numTriangles := mesh.TriangleCount()
	if len(mesh.MaterialIndexes) != 0 && len(mesh.MaterialIndexes) != numTriangles {
		return nil, ErrMaterialCountMismatch
	}
	if numTriangles == 0 {
		return nil, nil
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	numHalfEdges := 3 * numTriangles
	getPos := func(e uint32) vec3.Vec3 { return mesh.Positions[mesh.Indices[e]] }

	// Step 1-2: size Adjacency/EdgeHash to 3T, hash every half-edge in
	// parallel.
	adj := adjacency.New(numHalfEdges)
	eh := edgehash.New(numHalfEdges)

	parallelfor.For("hash-half-edges", numHalfEdges, o.batchSize, func(e uint32) {
		eh.AddConcurrent(e, getPos)
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 3: match every half-edge in parallel, classifying direct[e] as
	// unlinked (-1), the single match, or complex (-2, deferred).
	parallelfor.For("match-half-edges", numHalfEdges, o.batchSize, func(e uint32) {
		var matchCount int
		var matched uint32
		eh.ForAllMatching(e, false, getPos, func(_, cand uint32) {
			matchCount++
			matched = cand
		})
		switch {
		case matchCount == 0:
			adj.Direct[e] = adjacency.Unlinked
		case matchCount == 1:
			adj.Direct[e] = int32(matched)
		default:
			adj.Direct[e] = adjacency.Complex
		}
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 4: connected-components tracker over triangles.
	ds := disjoint.New(uint32(numTriangles))

	// Step 5: strictly-ascending serial pass resolving complex edges and
	// unioning islands. UnionSequential's precondition depends on this
	// order, so it cannot be parallelized.
	for e := uint32(0); e < uint32(numHalfEdges); e++ {
		if adj.Direct[e] == adjacency.Complex {
			var candidates []uint32
			eh.ForAllMatching(e, false, getPos, func(_, cand uint32) {
				candidates = append(candidates, cand)
			})
			slices.Sort(candidates)
			for _, cand := range candidates {
				adj.Link(e, cand)
			}
		}

		adj.ForAll(e, func(e, neighbor uint32) {
			if e > neighbor {
				ds.UnionSequential(e/3, neighbor/3)
			}
		})
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 6: build the locality-augmented adjacency graph and bisect it.
	p := partition.New(uint32(numTriangles), partition.WithPartitionSizeBounds(o.minPartitionSize, o.maxPartitionSize))

	triCenter := func(t uint32) vec3.Vec3 {
		i0 := mesh.Indices[t*3+0]
		i1 := mesh.Indices[t*3+1]
		i2 := mesh.Indices[t*3+2]
		sum := mesh.Positions[i0].Add(mesh.Positions[i1]).Add(mesh.Positions[i2])
		return sum.Scale(1.0 / 3.0)
	}
	p.BuildLocalityLinks(ds, mesh.Bounds, mesh.MaterialIndexes, triCenter)

	graph := p.NewGraph(numTriangles * 4)
	for i := uint32(0); i < uint32(numTriangles); i++ {
		p.BeginVertex(graph)

		t := p.Indices[i]
		for local := uint32(0); local < 3; local++ {
			e := t*3 + local
			adj.ForAll(e, func(_, neighbor uint32) {
				p.AddAdjacency(graph, p.SortedTo(neighbor/3), 260)
			})
		}
		p.AddLocalityLinks(graph, i, 1)
	}
	p.EndGraph(graph)

	p.PartitionStrict(graph)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 7: materialize one Cluster per emitted range.
	clusters := make([]Cluster, 0, len(p.Ranges))
	for _, r := range p.Ranges {
		clusters = append(clusters, materializeCluster(mesh, p.Indices, r))
	}
	return clusters, nil
}

func materializeCluster(mesh Mesh, sortedIndices []uint32, r partition.Range) Cluster {
	count := r.Len()
	indices := make([]uint32, 0, count*3)
	var materials []int32
	if len(mesh.MaterialIndexes) > 0 {
		materials = make([]int32, 0, count)
	}
	bounds := vec3.EmptyAABB()

	for pos := r.Begin; pos < r.End; pos++ {
		t := sortedIndices[pos]
		for local := uint32(0); local < 3; local++ {
			vi := mesh.Indices[t*3+local]
			indices = append(indices, vi)
			bounds = bounds.AddPoint(mesh.Positions[vi])
		}
		if materials != nil {
			materials = append(materials, mesh.MaterialIndexes[t])
		}
	}

	return Cluster{
		Indices:         indices,
		MaterialIndexes: materials,
		Bounds:          bounds,
		GUID:            newClusterGUID(),
		MipLevel:        0,
	}
}

// newClusterGUID mints a globally unique 64-bit cluster id from the low 8
// bytes of a fresh random UUID; the wire type here is uint64, not a UUID.
func newClusterGUID() uint64 {
	id := uuid.New()
	var v uint64
	for _, b := range id[8:16] {
		v = v<<8 | uint64(b)
	}
	return v
}
