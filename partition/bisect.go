package partition

import "golang.org/x/exp/slices"

// Partition either emits a single range (when Num already fits within
// MaxPartitionSize) or recursively bisects the graph into equal halves
// until every piece fits within MaxPartitionSize. The target part count
// only sizes the Ranges slice; it does not steer piece sizes toward
// MinPartitionSize. An empty graph emits no ranges.
func (p *Partitioner) Partition(g *GraphData) {
	if g.Num == 0 {
		p.Ranges = nil
		return
	}

	mid := (p.minPartitionSize + p.maxPartitionSize) / 2
	target := int((g.Num + mid/2) / mid)
	if target < 1 {
		target = 1
	}
	p.Ranges = make([]Range, 0, target)

	if g.Num <= p.maxPartitionSize {
		p.Ranges = append(p.Ranges, Range{Begin: g.Offset, End: g.Offset + g.Num})
		return
	}

	p.recursiveBisect(g)
}

// PartitionStrict runs Partition, then rebalances any range left smaller
// than MinPartitionSize by shifting its shared boundary with a neighboring
// range. Triangles are only taken from a neighbor above MinPartitionSize,
// so several ranges can stay undersized (a 300-triangle chain yields four
// ranges of 75); totality and the upper bound always hold.
func (p *Partitioner) PartitionStrict(g *GraphData) {
	p.Partition(g)
	slices.SortFunc(p.Ranges, func(a, b Range) bool { return a.Begin < b.Begin })
	p.rebalance()
}

func (p *Partitioner) recursiveBisect(g *GraphData) {
	if g.Num <= p.maxPartitionSize {
		p.Ranges = append(p.Ranges, Range{Begin: g.Offset, End: g.Offset + g.Num})
		return
	}

	left, right := p.bisectGraph(g)
	p.recursiveBisect(left)
	p.recursiveBisect(right)
}

// bisectGraph splits g into two balanced halves via the external bisector
// contract (Bisect), then physically permutes the corresponding window of
// Indices (and sortedTo) so each half is contiguous, and rebuilds each
// half's CSR adjacency from g's, dropping edges that now cross the cut.
func (p *Partitioner) bisectGraph(g *GraphData) (left, right *GraphData) {
	n := int(g.Num)
	part, _ := Bisect(g.AdjacencyOffset, g.Adjacency, g.AdjacencyCost)

	// Stable-partition local ids into side 0 then side 1.
	perm := make([]int, 0, n)
	for j := 0; j < n; j++ {
		if part[j] == 0 {
			perm = append(perm, j)
		}
	}
	count0 := len(perm)
	for j := 0; j < n; j++ {
		if part[j] == 1 {
			perm = append(perm, j)
		}
	}

	newLocal := make([]int, n)
	for newID, oldID := range perm {
		newLocal[oldID] = newID
	}

	oldSlice := make([]uint32, n)
	copy(oldSlice, p.Indices[g.Offset:g.Offset+g.Num])
	for newID, oldID := range perm {
		t := oldSlice[oldID]
		pos := g.Offset + uint32(newID)
		p.Indices[pos] = t
		p.sortedTo[t] = pos
	}

	left = &GraphData{Offset: g.Offset, Num: uint32(count0)}
	right = &GraphData{Offset: g.Offset + uint32(count0), Num: g.Num - uint32(count0)}
	left.AdjacencyOffset = make([]int32, 0, count0+1)
	right.AdjacencyOffset = make([]int32, 0, n-count0+1)

	for newID := 0; newID < n; newID++ {
		oldID := perm[newID]
		child := left
		if part[oldID] == 1 {
			child = right
		}

		child.AdjacencyOffset = append(child.AdjacencyOffset, int32(len(child.Adjacency)))
		for k := g.AdjacencyOffset[oldID]; k < g.AdjacencyOffset[oldID+1]; k++ {
			nbrOld := int(g.Adjacency[k])
			if part[nbrOld] != part[oldID] {
				continue // dropped: crosses the cut
			}
			localNbr := newLocal[nbrOld]
			if part[oldID] == 1 {
				localNbr -= count0
			}
			child.Adjacency = append(child.Adjacency, int32(localNbr))
			child.AdjacencyCost = append(child.AdjacencyCost, g.AdjacencyCost[k])
		}
	}
	left.AdjacencyOffset = append(left.AdjacencyOffset, int32(len(left.Adjacency)))
	right.AdjacencyOffset = append(right.AdjacencyOffset, int32(len(right.Adjacency)))

	return left, right
}

// rebalance walks the sorted Ranges once, trying to pull triangles across a
// shared boundary into any range left below MinPartitionSize.
func (p *Partitioner) rebalance() {
	for i := 0; i < len(p.Ranges); i++ {
		if uint32(p.Ranges[i].Len()) >= p.minPartitionSize {
			continue
		}
		if i+1 < len(p.Ranges) && p.tryShiftBoundary(i, i+1) {
			continue
		}
		if i > 0 {
			p.tryShiftBoundary(i-1, i)
		}
	}
}

// tryShiftBoundary moves the shared boundary between two adjacent ranges
// (Ranges[leftIdx].End == Ranges[rightIdx].Begin) toward whichever side is
// undersized, bounded so neither side is pushed below MinPartitionSize. The
// swappedWith guard ensures a given pair is only adjusted once, preventing
// oscillation.
func (p *Partitioner) tryShiftBoundary(leftIdx, rightIdx int) bool {
	key := [2]int{leftIdx, rightIdx}
	if p.swappedWith[key] {
		return false
	}
	p.swappedWith[key] = true

	left := p.Ranges[leftIdx]
	right := p.Ranges[rightIdx]
	leftLen := uint32(left.Len())
	rightLen := uint32(right.Len())

	switch {
	case leftLen < p.minPartitionSize && rightLen > p.minPartitionSize:
		move := minU32(p.minPartitionSize-leftLen, rightLen-p.minPartitionSize)
		if move == 0 {
			return false
		}
		left.End += move
		right.Begin += move
	case rightLen < p.minPartitionSize && leftLen > p.minPartitionSize:
		move := minU32(p.minPartitionSize-rightLen, leftLen-p.minPartitionSize)
		if move == 0 {
			return false
		}
		left.End -= move
		right.Begin -= move
	default:
		return false
	}

	p.Ranges[leftIdx] = left
	p.Ranges[rightIdx] = right
	return true
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
