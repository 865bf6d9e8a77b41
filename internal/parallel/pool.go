package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of long-lived goroutines shared by every kernel call that
// uses it as a Mapper.
//
// A For call publishes one job and offers it to idle workers; the caller and the
// workers that accepted then claim indices from a shared counter until none are
// left. Offers never block: when no worker is idle the caller runs the
// remaining indices itself, so a task may call For on the same pool.
//
//	pool := parallel.NewPool(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	fwd, _ := softmax.NewForward[float32](layout, softmax.WithMapper(pool))
type Pool struct {
	workers int
	jobs    chan *job

	mu     sync.RWMutex // guards closed and sends on jobs
	closed bool
}

// job is a single For call. Participants claim indices from next.
type job struct {
	n    int
	task func(i int)
	next atomic.Int64
	done sync.WaitGroup
}

func (j *job) run() {
	defer j.done.Done()
	for {
		i := int(j.next.Add(1) - 1)
		if i >= j.n {
			return
		}
		j.task(i)
	}
}

// NewPool starts workers goroutines. If workers <= 0, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		jobs:    make(chan *job),
	}
	for range workers {
		go func() {
			for j := range p.jobs {
				j.run()
			}
		}()
	}
	return p
}

// Workers returns the number of goroutines in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers once they finish the jobs they hold. It is safe to
// call more than once and concurrently with For; For calls that start after
// Close run on the calling goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.jobs)
}

// For implements Mapper.
func (p *Pool) For(n int, task func(i int)) {
	if n <= 0 {
		return
	}

	j := &job{n: n, task: task}
	j.done.Add(1)
	p.offer(j, min(p.workers, n)-1)
	j.run()
	j.done.Wait()
}

// offer hands j to at most helpers idle workers.
func (p *Pool) offer(j *job, helpers int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}
	for range helpers {
		j.done.Add(1)
		select {
		case p.jobs <- j:
		default:
			j.done.Done()
			return
		}
	}
}

// ParallelFor splits [0, n) into about one contiguous range per worker and
// blocks until every range was processed.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	chunk := (n + p.workers - 1) / p.workers
	p.For((n+chunk-1)/chunk, func(i int) {
		fn(i*chunk, min((i+1)*chunk, n))
	})
}
