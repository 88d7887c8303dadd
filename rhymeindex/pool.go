package rhymeindex

import (
	"context"
	"sync"
)

// Job is a unit of work submitted to the WorkerPool.
// Jobs report their own failures; the pool ignores the returned error.
type Job func(ctx context.Context) error

// WorkerPool runs jobs using a fixed number of goroutines.
// Import uses it to analyze words in parallel while a single goroutine
// writes the results.
type WorkerPool struct {
	jobs    chan Job
	wg      sync.WaitGroup
	workers int
	closeMu sync.Mutex
	closed  bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers
// and job queue capacity.
func NewWorkerPool(workers, queue int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if queue <= 0 {
		queue = workers * 2
	}
	return &WorkerPool{
		jobs:    make(chan Job, queue),
		workers: workers,
	}
}

// Start begins the worker goroutines and listens for jobs until ctx is done or Close is called.
func (p *WorkerPool) Start(ctx context.Context) {
	for range p.workers {
		p.wg.Go(func() {
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					_ = job(ctx)
				}
			}
		})
	}
}

// Submit enqueues a job for processing. It blocks while the queue is full
// and gives up when ctx is done. Returns ErrPoolClosed if the pool is closed.
func (p *WorkerPool) Submit(ctx context.Context, job Job) error {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting new jobs and waits for workers to finish.
func (p *WorkerPool) Close() {
	p.closeMu.Lock()
	if p.closed {
		p.closeMu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.closeMu.Unlock()
	p.wg.Wait()
}
