package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vireo-graphics/trimesh-cluster/adjacency"
)

func TestLinkUsesDirectSlotFirst(t *testing.T) {
	a := adjacency.New(4)
	a.Link(0, 1)
	require.EqualValues(t, 1, a.Direct[0])
	require.EqualValues(t, 0, a.Direct[1])
	require.Empty(t, a.Extended(0))
}

func TestLinkFallsBackToExtendedWhenDirectTaken(t *testing.T) {
	a := adjacency.New(4)
	a.Link(0, 1) // direct: 0<->1
	a.Link(0, 2) // 0 already has a direct neighbor -> extended

	require.EqualValues(t, 1, a.Direct[0])
	require.Contains(t, a.Extended(0), uint32(2))
	require.Contains(t, a.Extended(2), uint32(0))
}

func TestAddUniqueDeduplicates(t *testing.T) {
	a := adjacency.New(4)
	a.AddUnique(0, 1)
	a.AddUnique(0, 1)
	require.Len(t, a.Extended(0), 1)
}

func TestForAllVisitsDirectThenExtended(t *testing.T) {
	a := adjacency.New(4)
	a.Link(0, 1)
	a.Link(0, 2)
	a.Link(0, 3)

	var seen []uint32
	a.ForAll(0, func(e, n uint32) { seen = append(seen, n) })
	require.ElementsMatch(t, []uint32{1, 2, 3}, seen)
	require.Equal(t, uint32(1), seen[0], "direct neighbor must be visited first")
}

// Every neighbor relation must be visible from both sides.
func TestAdjacencySymmetry(t *testing.T) {
	a := adjacency.New(6)
	a.Link(0, 1)
	a.Link(0, 2)
	a.Link(0, 3)
	a.Link(4, 5)

	for e := uint32(0); e < 6; e++ {
		a.ForAll(e, func(x, n uint32) {
			found := false
			a.ForAll(n, func(_, back uint32) {
				if back == x {
					found = true
				}
			})
			require.True(t, found, "edge %d -> %d not symmetric", x, n)
		})
	}
}
