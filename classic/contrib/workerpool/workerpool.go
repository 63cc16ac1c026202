// Copyright 2026 The go-classics Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for running many
// independent, fallible tasks, such as randomized verification trials.
// Workers are spawned once and reused by every Run call until Close.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Run(ctx, trials, func(ctx context.Context, i int) error {
//	    return checkTrial(i)
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. A Pool may be shared by concurrent Run
// calls; their tasks interleave on the same workers.
type Pool struct {
	numWorkers int
	workC      chan func()
	closeOnce  sync.Once
	closed     atomic.Bool
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan func(), numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for fn := range p.workC {
		fn()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after queued work drains.
// Calling Close multiple times is safe. Run after Close executes inline.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run calls fn for every index in [0, n) and blocks until all calls have
// returned or the run is aborted.
//
// Indices are handed out one at a time through an atomic counter, so a slow
// task does not hold up a whole chunk. The first error returned by fn
// cancels the context passed to the remaining tasks, stops new indices from
// being handed out, and is returned from Run. If ctx is cancelled first,
// Run returns ctx.Err().
func (p *Pool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		firstErr error
		errOnce  sync.Once
		next     atomic.Int64
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}
	drain := func() {
		for {
			if runCtx.Err() != nil {
				return
			}
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			if err := fn(runCtx, i); err != nil {
				fail(err)
				return
			}
		}
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		drain()
	} else {
		var wg sync.WaitGroup
		wg.Add(workers)
		for range workers {
			p.workC <- func() {
				defer wg.Done()
				drain()
			}
		}
		wg.Wait()
	}

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
