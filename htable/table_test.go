package htable_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vireo-graphics/trimesh-cluster/htable"
)

func TestNewRejectsNonPowerOfTwo(t *testing.T) {
	require.Panics(t, func() { htable.New(0, 0) })
	require.Panics(t, func() { htable.New(3, 0) })
	require.Panics(t, func() { htable.New(1000, 0) })
}

func TestAddAndFirstRoundTrip(t *testing.T) {
	tbl := htable.New(8, 16)

	// Insert (k_i, i) for i in [0,16); every index must be reachable from
	// exactly the bucket its key maps to.
	keys := make([]uint32, 16)
	for i := uint32(0); i < 16; i++ {
		keys[i] = i * 7
		tbl.Add(keys[i], i)
	}

	for key := uint32(0); key < 8; key++ {
		want := map[uint32]bool{}
		for i, k := range keys {
			if k&7 == key {
				want[uint32(i)] = true
			}
		}
		got := map[uint32]bool{}
		for idx := tbl.First(key); htable.IsValid(idx); idx = tbl.Next(idx) {
			got[idx] = true
		}
		require.Equal(t, want, got, "bucket %d", key)
	}
}

func TestAddConcurrentLinksAllDistinctIndices(t *testing.T) {
	const n = 2000
	tbl := htable.New(64, n)

	var wg sync.WaitGroup
	for i := uint32(0); i < n; i++ {
		wg.Add(1)
		go func(i uint32) {
			defer wg.Done()
			tbl.AddConcurrent(i, i)
		}(i)
	}
	wg.Wait()

	seen := make([]bool, n)
	for key := uint32(0); key < 64; key++ {
		for idx := tbl.First(key); htable.IsValid(idx); idx = tbl.Next(idx) {
			require.False(t, seen[idx], "index %d inserted twice", idx)
			seen[idx] = true
		}
	}
	for i, s := range seen {
		require.True(t, s, "index %d missing from any bucket", i)
	}
}

func TestNextOutOfRangePanics(t *testing.T) {
	tbl := htable.New(8, 4)
	require.Panics(t, func() { tbl.Next(100) })
}

func TestRemoveIsNoOpWhenAbsent(t *testing.T) {
	tbl := htable.New(8, 4)
	tbl.Remove(0, 2) // never inserted
	require.Equal(t, htable.Sentinel, tbl.First(0))
}

func TestClearResetsAllBuckets(t *testing.T) {
	tbl := htable.New(8, 4)
	tbl.Add(1, 0)
	tbl.Add(1, 1)
	tbl.Clear()
	for key := uint32(0); key < 8; key++ {
		require.Equal(t, htable.Sentinel, tbl.First(key))
	}
}
