package partition

// NewGraph allocates an empty GraphData spanning all of this partitioner's
// triangles, in their current Indices order. numAdjacencyHint preallocates
// Adjacency/AdjacencyCost capacity; callers pass a rough upper bound (e.g.
// a handful of edges per triangle) to avoid reallocation during the build
// loop.
func (p *Partitioner) NewGraph(numAdjacencyHint int) *GraphData {
	return &GraphData{
		Offset:          0,
		Num:             p.numElements,
		AdjacencyOffset: make([]int32, 0, p.numElements+1),
		Adjacency:       make([]int32, 0, numAdjacencyHint),
		AdjacencyCost:   make([]int32, 0, numAdjacencyHint),
	}
}

// BeginVertex records the current adjacency length as the next vertex's
// CSR offset. Callers invoke this once per sorted triangle, immediately
// before adding that triangle's edges.
func (p *Partitioner) BeginVertex(g *GraphData) {
	g.AdjacencyOffset = append(g.AdjacencyOffset, int32(len(g.Adjacency)))
}

// EndGraph caps the offsets array with the final adjacency length, once all
// vertices have been added.
func (p *Partitioner) EndGraph(g *GraphData) {
	g.AdjacencyOffset = append(g.AdjacencyOffset, int32(len(g.Adjacency)))
}

// AddAdjacency appends one CSR edge from the vertex currently being built
// (the most recent BeginVertex call) to local vertex id adjIndex, weighted
// by cost.
func (p *Partitioner) AddAdjacency(g *GraphData, adjIndex uint32, cost int32) {
	g.Adjacency = append(g.Adjacency, int32(adjIndex))
	g.AdjacencyCost = append(g.AdjacencyCost, cost)
}

// AddLocalityLinks appends every locality-link neighbor of the triangle at
// sorted position posIndex as a CSR edge, translating each linked triangle
// to its current local vertex id via SortedTo, weighted by cost.
func (p *Partitioner) AddLocalityLinks(g *GraphData, posIndex uint32, cost int32) {
	t := p.Indices[posIndex]
	for _, t2 := range p.localityLinks[t] {
		p.AddAdjacency(g, p.SortedTo(t2), cost)
	}
}
