package parallelfor_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vireo-graphics/trimesh-cluster/parallelfor"
)

func TestForVisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 10000
	seen := make([]int32, n)
	parallelfor.For("test", n, 64, func(i uint32) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, v := range seen {
		require.EqualValues(t, 1, v, "index %d", i)
	}
}

func TestForZeroIsNoOp(t *testing.T) {
	called := false
	parallelfor.For("test", 0, 16, func(i uint32) { called = true })
	require.False(t, called)
}

func TestForSumIsOrderIndependent(t *testing.T) {
	const n = 1000
	var sum int64
	parallelfor.For("test", n, 7, func(i uint32) {
		atomic.AddInt64(&sum, int64(i))
	})
	require.EqualValues(t, n*(n-1)/2, sum)
}
