package disjoint

import "fmt"

// Set is a union-find structure where the root of every tree is the maximum
// element index in that tree.
type Set struct {
	parent []uint32
}

// New constructs a Set of size elements, each initially its own root.
func New(size uint32) *Set {
	parent := make([]uint32, size)
	for i := range parent {
		parent[i] = uint32(i)
	}
	return &Set{parent: parent}
}

// Root reports the current parent pointer of i without ascension or path
// compression. Only equal to Find(i) once every path has been compressed;
// callers that need the true root use Find.
func (s *Set) Root(i uint32) uint32 { return s.parent[i] }

// Union merges the trees containing x and y, climbing both upward and
// repeatedly reassigning the smaller-rooted path to point at the larger
// root, terminating when both ascending pointers agree. Safe for arbitrary
// x, y in any order.
func (s *Set) Union(x, y uint32) {
	px := s.parent[x]
	py := s.parent[y]

	for px != py {
		if px < py {
			s.parent[x] = py
			if x == px {
				return
			}
			x = px
			px = s.parent[x]
		} else {
			s.parent[y] = px
			if y == py {
				return
			}
			y = py
			py = s.parent[y]
		}
	}
}

// UnionSequential merges y's tree into x, under the precondition that x is
// currently a root (parent[x] == x) and x >= y — true during an ascending
// pass i = 0..N-1 where x is the current iterator value. Climbs from y
// upward, rewriting each ancestor's parent to x until reaching the prior
// root of y's tree. O(path length), amortized near-constant.
//
// Panics if the precondition is violated.
func (s *Set) UnionSequential(x, y uint32) {
	if x < y {
		panic(fmt.Sprintf("disjoint.UnionSequential: require x >= y, got x=%d y=%d", x, y))
	}
	if s.parent[x] != x {
		panic(fmt.Sprintf("disjoint.UnionSequential: x=%d must be a root, but parent[x]=%d", x, s.parent[x]))
	}

	px := x
	py := s.parent[y]
	for px != py {
		s.parent[y] = px
		if y == py {
			return
		}
		y = py
		py = s.parent[y]
	}
}

// Find returns the root of i's tree, compressing the path traversed so that
// every visited node's parent is rewritten directly to the root.
func (s *Set) Find(i uint32) uint32 {
	start := i
	root := s.parent[i]
	for root != i {
		i = root
		root = s.parent[i]
	}

	i = start
	parent := s.parent[i]
	for parent != root {
		s.parent[i] = root
		i = parent
		parent = s.parent[i]
	}
	return root
}

// Len returns the number of elements in the set.
func (s *Set) Len() int { return len(s.parent) }
