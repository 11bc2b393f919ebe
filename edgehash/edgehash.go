package edgehash

import (
	"github.com/vireo-graphics/trimesh-cluster/htable"
	"github.com/vireo-graphics/trimesh-cluster/vec3"
)

// GetPosition resolves a half-edge index to the 3D position of the vertex it
// originates from.
type GetPosition func(e uint32) vec3.Vec3

// MatchFunc is invoked for each matching opposite-winding half-edge pair.
type MatchFunc func(e, matched uint32)

// EdgeHash matches half-edges sharing an endpoint-position pair in opposite
// winding. It is constructed with the anticipated half-edge count N and
// sizes its internal table to the next power of two >= N.
type EdgeHash struct {
	table *htable.Table
}

// New constructs an EdgeHash sized for numHalfEdges half-edges.
func New(numHalfEdges int) *EdgeHash {
	n := uint32(numHalfEdges)
	hashSize := nextPow2(maxU32(1, n))
	return &EdgeHash{table: htable.New(hashSize, n)}
}

func edgeHash(getPos GetPosition, e uint32) uint32 {
	p0 := getPos(e)
	p1 := getPos(Cycle3(e))
	return murmur32(HashPosition(p0), HashPosition(p1))
}

// AddConcurrent inserts half-edge e into the table under the hash of its
// endpoint-position pair. Safe to call concurrently for distinct e values.
func (h *EdgeHash) AddConcurrent(e uint32, getPos GetPosition) {
	h.table.AddConcurrent(edgeHash(getPos, e), e)
}

// ForAllMatching probes the bucket an opposite-winding edge would have
// inserted itself under — the swapped hash of (p1, p0) — and invokes fn(e,
// candidate) for each candidate whose endpoints are e's endpoints in
// opposite winding: getPos(e) == getPos(Cycle3(candidate)) AND
// getPos(Cycle3(e)) == getPos(candidate). If addSelf, e is then inserted
// under its own hash, so a later query from its true opposite finds it.
func (h *EdgeHash) ForAllMatching(e uint32, addSelf bool, getPos GetPosition, fn MatchFunc) {
	p0 := getPos(e)
	p1 := getPos(Cycle3(e))
	hash0 := HashPosition(p0)
	hash1 := HashPosition(p1)

	for cand := h.table.First(murmur32(hash1, hash0)); htable.IsValid(cand); cand = h.table.Next(cand) {
		if p0 == getPos(Cycle3(cand)) && p1 == getPos(cand) {
			fn(e, cand)
		}
	}

	if addSelf {
		h.table.Add(murmur32(hash0, hash1), e)
	}
}

func nextPow2(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v++
	return v
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
