package parallelfor

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Body is invoked once per index in [0, N). Implementations may call it
// from any goroutine; it must be safe for concurrent invocation across
// distinct indices.
type Body func(i uint32)

// batch is one contiguous index range handed to a single worker pull.
type batch struct {
	begin, end uint32
}

// For invokes body(i) for every i in [0, n), split into chunks of at most
// batchSize indices and distributed across a bounded worker pool. label is
// a human-readable tag for the call site, unused beyond documentation
// intent.
//
// n == 0 is a no-op. batchSize <= 0 is treated as n (single batch, still
// run through the same worker-pool machinery so single-threaded and
// multi-threaded execution share one code path).
func For(label string, n int, batchSize int, body Body) {
	_ = label
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = n
	}

	numBatches := (n + batchSize - 1) / batchSize
	tasks := make(chan batch, numBatches)
	for begin := 0; begin < n; begin += batchSize {
		end := begin + batchSize
		if end > n {
			end = n
		}
		tasks <- batch{begin: uint32(begin), end: uint32(end)}
	}
	close(tasks)

	workers := runtime.NumCPU()
	if workers > numBatches {
		workers = numBatches
	}
	if workers < 1 {
		workers = 1
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for b := range tasks {
				for i := b.begin; i < b.end; i++ {
					body(i)
				}
			}
			return nil
		})
	}

	_ = g.Wait() // body never errors; Wait only serves as the completion barrier.
}
