// Copyright 2026 go-lav Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs slice comparisons across a fixed set of goroutines.
// A Pool is created once and shared by every parity check of a run, so a
// comparison of many short slices does not pay for spawning goroutines each
// time.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, c := range cases {
//	    report := parity.Compare(pool, c.want, c.got, lav.High[float64]())
//	    // ...
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of persistent workers fed through a shared channel.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines. They live until Close.
// If numWorkers <= 0, GOMAXPROCS workers are started.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued work has drained.
// Calling Close more than once is safe. A closed pool runs work inline.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It blocks until every range is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForAligned(n, 1, fn)
}

// ParallelForAligned is ParallelFor with every range boundary except the
// last rounded to a multiple of align, so callers working a vector at a
// time only ever see a partial vector at the very end of [0, n).
func (p *Pool) ParallelForAligned(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if align <= 0 {
		align = 1
	}

	blocks := (n + align - 1) / align
	workers := min(p.numWorkers, blocks)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (blocks + workers - 1) / workers * align

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.tasks <- task{
			run:  func() { fn(start, end) },
			done: &wg,
		}
	}
	wg.Wait()
}

// ParallelForAtomicBatched hands out [0, n) in batches of batchSize through
// an atomic counter, so workers that finish early pick up more batches.
// fn(start, end) is called once per batch. It blocks until all batches are
// done.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			run: func() {
				for {
					start := int(next.Add(1)-1) * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
