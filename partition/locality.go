package partition

import (
	"math"

	"github.com/vireo-graphics/trimesh-cluster/disjoint"
	"github.com/vireo-graphics/trimesh-cluster/morton"
	"github.com/vireo-graphics/trimesh-cluster/vec3"
)

// Locality-link construction constants.
const (
	localityIslandSizeThreshold = 128
	localityMaxCandidates       = 5
	localityScanRadius          = 16
	mortonAxisScale             = 1023
)

// GetCenter returns triangle t's centroid in mesh space.
type GetCenter func(t uint32) vec3.Vec3

// islandRange is the inclusive [Begin,End] sorted-position span sharing one
// disjoint-set root, computed once over the Morton-sorted order.
type islandRange struct {
	Begin, End int
}

// BuildLocalityLinks computes the Morton sort order and the symmetric
// locality multimap. ds must already reflect every union the orchestrator's
// serial pass performed. groupIDs may be empty, meaning "ignore groups"
// (every triangle shares group 0).
func (p *Partitioner) BuildLocalityLinks(ds *disjoint.Set, bounds vec3.AABB, groupIDs []int32, getCenter GetCenter) {
	n := int(p.numElements)
	if n == 0 {
		return
	}

	dim := bounds.Dimensions()
	invX, invY, invZ := safeInv(dim.X), safeInv(dim.Y), safeInv(dim.Z)

	mortonKey := func(t uint32) uint32 {
		local := getCenter(t).Sub(bounds.Min)
		x := uint32(local.X * invX * mortonAxisScale)
		y := uint32(local.Y * invY * mortonAxisScale)
		z := uint32(local.Z * invZ * mortonAxisScale)
		return morton.Code3(x, y, z)
	}

	keys := make([]uint32, n)
	src := make([]uint32, n)
	for t := 0; t < n; t++ {
		keys[t] = mortonKey(uint32(t))
		src[t] = uint32(t)
	}
	dst := make([]uint32, n)
	morton.RadixSort32(dst, src, func(v uint32) uint32 { return keys[v] })
	p.Indices = dst
	for i, t := range p.Indices {
		p.sortedTo[t] = uint32(i)
	}

	// Find (not a raw parent read): the sequential union pass leaves some
	// deep nodes pointing at stale intermediate roots, and a wrong island id
	// here would split one island's sorted range in two.
	islandOf := func(pos int) uint32 { return ds.Find(p.Indices[pos]) }
	groupOf := func(pos int) int32 {
		if len(groupIDs) == 0 {
			return 0
		}
		return groupIDs[p.Indices[pos]]
	}

	ranges := computeIslandRanges(n, islandOf)

	for i := 0; i < n; i++ {
		r := ranges[i]
		if r.End-r.Begin+1 >= localityIslandSizeThreshold {
			continue
		}

		_, closestIdx := scanLocalityCandidates(i, n, ranges, islandOf, groupOf, func(a, b int) float32 {
			return vec3.DistanceSquared(getCenter(p.Indices[a]), getCenter(p.Indices[b]))
		})

		t := p.Indices[i]
		for k := 0; k < localityMaxCandidates; k++ {
			if closestIdx[k] < 0 {
				continue
			}
			adjT := p.Indices[closestIdx[k]]
			p.addLocalityLink(t, adjT)
			p.addLocalityLink(adjT, t)
		}
	}
}

// computeIslandRanges groups consecutive sorted positions sharing one
// island root into inclusive [Begin,End] spans.
func computeIslandRanges(n int, islandOf func(pos int) uint32) []islandRange {
	ranges := make([]islandRange, n)
	rangeBegin := 0
	for i := 1; i <= n; i++ {
		if i == n || islandOf(i) != islandOf(rangeBegin) {
			for j := rangeBegin; j < i; j++ {
				ranges[j] = islandRange{Begin: rangeBegin, End: i - 1}
			}
			rangeBegin = i
		}
	}
	return ranges
}

// scanLocalityCandidates scans up to localityScanRadius positions in each
// Morton-order direction from i, rejecting same-island or different-group
// candidates (and skipping past their whole island range on rejection), and
// returns the localityMaxCandidates closest accepted candidates found
// across both directions combined.
func scanLocalityCandidates(i, n int, ranges []islandRange, islandOf func(int) uint32, groupOf func(int) int32, dist2 func(a, b int) float32) ([localityMaxCandidates]float32, [localityMaxCandidates]int) {
	var closestDist [localityMaxCandidates]float32
	var closestIdx [localityMaxCandidates]int
	for k := range closestDist {
		closestDist[k] = float32(math.MaxFloat32)
		closestIdx[k] = -1
	}

	myIsland := islandOf(i)
	myGroup := groupOf(i)

	for dir := 0; dir < 2; dir++ {
		step, limit := -1, 0
		if dir == 1 {
			step, limit = 1, n-1
		}

		adj := i
		for it := 0; it < localityScanRadius; it++ {
			if adj == limit {
				break
			}
			adj += step

			if islandOf(adj) == myIsland || groupOf(adj) != myGroup {
				if dir == 1 {
					adj = ranges[adj].End
				} else {
					adj = ranges[adj].Begin
				}
				continue
			}

			candDist := dist2(i, adj)
			candIdx := adj
			for k := 0; k < localityMaxCandidates; k++ {
				if candDist < closestDist[k] {
					candDist, closestDist[k] = closestDist[k], candDist
					candIdx, closestIdx[k] = closestIdx[k], candIdx
				}
			}
		}
	}

	return closestDist, closestIdx
}

func (p *Partitioner) addLocalityLink(from, to uint32) {
	for _, v := range p.localityLinks[from] {
		if v == to {
			return
		}
	}
	p.localityLinks[from] = append(p.localityLinks[from], to)
}

func safeInv(d float32) float32 {
	if d == 0 {
		return 0
	}
	return 1 / d
}
