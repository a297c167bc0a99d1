// SPDX-License-Identifier: MIT

// Package workerpool provides a persistent pool of goroutines that splits an
// index space [0, n) into contiguous, disjoint ranges, one per worker.
//
// Workers are spawned once by New and reused by every ParallelFor call, so a
// driver that squares a matrix many times pays the spawn cost only once.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(n, func(lo, hi int) {
//	    computeRows(lo, hi)
//	})
package workerpool

import (
	"runtime"
	"sync"
)

// Pool is a persistent worker pool. It is safe for concurrent use; concurrent
// ParallelFor calls share the same workers, and Close may race with them.
type Pool struct {
	workers int
	workC   chan task

	// mu guards closed and the sends on workC: ParallelFor holds it shared
	// while enqueuing, Close holds it exclusively while closing workC.
	mu     sync.RWMutex
	closed bool
}

// task is one contiguous range handed to a worker.
type task struct {
	fn      func(lo, hi int)
	lo, hi  int
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers.
// If workers <= 0, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		workC:   make(chan task, workers),
	}
	for range workers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn(t.lo, t.hi)
		t.barrier.Done()
	}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close shuts the pool down. Calling Close multiple times is safe; ParallelFor
// on a closed pool runs sequentially on the caller's goroutine. Ranges already
// enqueued by an in-flight ParallelFor still run on the workers.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// ParallelFor calls fn over contiguous ranges covering [0, n) exactly once and
// blocks until every range is done. At most Workers() ranges are used, and
// never more ranges than indices.
func (p *Pool) ParallelFor(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	ranges := Split(n, p.workers)
	if len(ranges) == 1 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for _, r := range ranges {
		p.workC <- task{fn: fn, lo: r[0], hi: r[1], barrier: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Split partitions [0, n) into at most parts contiguous [lo, hi) ranges of
// near-equal size (sizes differ by at most one, larger ranges first).
// It returns nil for n <= 0; parts <= 0 is treated as 1.
func Split(n, parts int) [][2]int {
	if n <= 0 {
		return nil
	}
	parts = max(1, min(parts, n))

	out := make([][2]int, parts)
	base, extra := n/parts, n%parts
	lo := 0
	for i := range parts {
		size := base
		if i < extra {
			size++
		}
		out[i] = [2]int{lo, lo + size}
		lo += size
	}

	return out
}
