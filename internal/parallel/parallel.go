// Package parallel provides the parallel-map capability used by the softmax kernels.
//
// Every Mapper runs task(i) for each i in [0, n) and returns only after all
// tasks completed. Tasks handed to a Mapper must touch disjoint memory.
package parallel

import (
	"runtime"
	"sync"
)

// Mapper executes n independent tasks and returns after all of them completed.
type Mapper interface {
	For(n int, task func(i int))
}

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1, // Softmax rows are already coarse-grained tasks.
	}
}

// For makes a Config usable as a Mapper.
func (cfg Config) For(n int, task func(i int)) {
	For(n, task, cfg)
}

// Workers returns the number of tasks that may run at once.
func (cfg Config) Workers() int {
	if !cfg.Enabled {
		return 1
	}
	return max(cfg.NumWorkers, 1)
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < max(cfg.MinChunkSize, 2) {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// Sequential runs every task in order on the calling goroutine.
type Sequential struct{}

// For runs task(0) .. task(n-1).
func (Sequential) For(n int, task func(i int)) {
	for i := 0; i < n; i++ {
		task(i)
	}
}

// Workers always returns 1.
func (Sequential) Workers() int { return 1 }

// Concurrency reports how many tasks m may run at once. Mappers that do not
// expose a Workers method are assumed to use every CPU.
func Concurrency(m Mapper) int {
	if w, ok := m.(interface{ Workers() int }); ok {
		return max(w.Workers(), 1)
	}
	return runtime.GOMAXPROCS(0)
}
