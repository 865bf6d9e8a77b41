package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Group is a Mapper that spawns goroutines per call but never runs more than
// Limit of them at once.
type Group struct {
	Limit int // Maximum concurrent chunks; <= 0 means GOMAXPROCS.
}

// NewGroup creates a bounded Group mapper.
func NewGroup(limit int) Group {
	return Group{Limit: limit}
}

// Workers returns the effective concurrency limit.
func (g Group) Workers() int {
	if g.Limit <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return g.Limit
}

// For implements Mapper. The range is split into Workers() contiguous chunks.
func (g Group) For(n int, task func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(g.Workers(), n)
	if workers == 1 {
		for i := 0; i < n; i++ {
			task(i)
		}
		return
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	chunkSize := (n + workers - 1) / workers
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		eg.Go(func() error {
			for i := start; i < end; i++ {
				task(i)
			}
			return nil
		})
	}
	_ = eg.Wait() // Tasks never fail.
}
