package partition

import "math"

// refinementSizeLimit bounds the Kernighan-Lin refinement pass below;
// graphs larger than this keep the unrefined greedy split. Only calls at or
// near the top of the recursion exceed the limit; the smaller subgraphs that
// recursive bisection produces from them get their own splits refined once
// they fall below this size.
const refinementSizeLimit = 4096

const klMaxPasses = 8

// Bisect computes an approximately-balanced 2-way partition of a graph
// given in compressed-row storage (xadj, adjncy, adjwgt), minimizing edge
// cut subject to a hard |count0-count1| <= 1 balance constraint: a
// greedy-region-growing initial split refined by bounded Kernighan-Lin
// vertex swaps. Callers treat this as an opaque kernel; a multilevel
// bisector behind the same signature is a drop-in replacement.
func Bisect(xadj, adjncy, adjwgt []int32) (part []uint8, edgeCut int64) {
	n := len(xadj) - 1
	if n <= 0 {
		return nil, 0
	}
	if n == 1 {
		return []uint8{0}, 0
	}

	part = growRegions(n, xadj, adjncy, adjwgt)
	if n <= refinementSizeLimit {
		refineKernighanLin(n, xadj, adjncy, adjwgt, part)
	}
	return part, cutWeight(n, xadj, adjncy, adjwgt, part)
}

// growRegions seeds partition 0 at vertex 0 (or, once a connected component
// is exhausted, the next lowest unassigned id) and repeatedly grows it by
// the unassigned vertex with the most accumulated edge weight to the
// current region, until it reaches n/2 vertices. Ties break by lowest
// vertex id for determinism.
func growRegions(n int, xadj, adjncy, adjwgt []int32) []uint8 {
	target0 := n / 2
	part := make([]uint8, n)
	for i := range part {
		part[i] = 1
	}

	weight := make([]int64, n)
	assigned := 0
	nextSeed := 0

	assign := func(v int) {
		part[v] = 0
		assigned++
		for k := xadj[v]; k < xadj[v+1]; k++ {
			weight[adjncy[k]] += int64(adjwgt[k])
		}
	}

	for assigned < target0 {
		best, bestW := -1, int64(-1)
		for v := 0; v < n; v++ {
			if part[v] == 1 && weight[v] > bestW {
				bestW, best = weight[v], v
			}
		}
		if best == -1 || bestW <= 0 {
			for nextSeed < n && part[nextSeed] != 1 {
				nextSeed++
			}
			if nextSeed >= n {
				break
			}
			best = nextSeed
		}
		assign(best)
	}
	return part
}

// refineKernighanLin runs bounded passes of paired vertex swaps: each pass
// greedily swaps the highest-gain unlocked vertex on each side, tracking
// the cumulative gain of the swap sequence, then keeps only the prefix of
// swaps that achieved the best cumulative gain (classic Kernighan-Lin).
// Swaps preserve the exact partition sizes, so balance never drifts.
func refineKernighanLin(n int, xadj, adjncy, adjwgt []int32, part []uint8) {
	edgeWeight := make(map[[2]int]int64, len(adjncy))
	for v := 0; v < n; v++ {
		for k := xadj[v]; k < xadj[v+1]; k++ {
			edgeWeight[[2]int{v, int(adjncy[k])}] = int64(adjwgt[k])
		}
	}
	weightBetween := func(a, b int) int64 { return edgeWeight[[2]int{a, b}] }

	gainOf := func(v int) int64 {
		var internal, external int64
		for k := xadj[v]; k < xadj[v+1]; k++ {
			u := int(adjncy[k])
			w := int64(adjwgt[k])
			if part[u] == part[v] {
				internal += w
			} else {
				external += w
			}
		}
		return external - internal
	}

	type swapRec struct{ a, b int }

	for pass := 0; pass < klMaxPasses; pass++ {
		locked := make([]bool, n)
		var swaps []swapRec
		var cum, best int64
		bestIdx := -1

		for step := 0; step < n/2; step++ {
			bestA, bestB := -1, -1
			var bestGainA, bestGainB int64 = math.MinInt64, math.MinInt64
			for v := 0; v < n; v++ {
				if locked[v] {
					continue
				}
				g := gainOf(v)
				if part[v] == 0 && g > bestGainA {
					bestGainA, bestA = g, v
				} else if part[v] == 1 && g > bestGainB {
					bestGainB, bestB = g, v
				}
			}
			if bestA < 0 || bestB < 0 {
				break
			}

			swapGain := bestGainA + bestGainB - 2*weightBetween(bestA, bestB)
			part[bestA], part[bestB] = part[bestB], part[bestA]
			locked[bestA], locked[bestB] = true, true
			cum += swapGain
			swaps = append(swaps, swapRec{bestA, bestB})
			if cum > best {
				best, bestIdx = cum, step
			}
		}

		if bestIdx < 0 || best <= 0 {
			for i := len(swaps) - 1; i >= 0; i-- {
				part[swaps[i].a], part[swaps[i].b] = part[swaps[i].b], part[swaps[i].a]
			}
			return
		}
		for i := len(swaps) - 1; i > bestIdx; i-- {
			part[swaps[i].a], part[swaps[i].b] = part[swaps[i].b], part[swaps[i].a]
		}
	}
}

func cutWeight(n int, xadj, adjncy, adjwgt []int32, part []uint8) int64 {
	var cut int64
	for v := 0; v < n; v++ {
		for k := xadj[v]; k < xadj[v+1]; k++ {
			u := int(adjncy[k])
			if part[u] != part[v] {
				cut += int64(adjwgt[k])
			}
		}
	}
	return cut / 2
}
