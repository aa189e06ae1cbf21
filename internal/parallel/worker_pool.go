// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"sync"

	"ferret-records/internal/observability"
)

// ProcessFunc handles one item on the given worker. Each worker ID is used by
// exactly one goroutine, so per-worker state indexed by it needs no locking.
type ProcessFunc[T, R any] func(workerID int, item T) R

// WorkerPool fans items out to a fixed number of workers
type WorkerPool[T, R any] struct {
	workers  int
	jobs     chan Job[T]
	results  chan Result[R]
	wg       sync.WaitGroup
	process  ProcessFunc[T, R]
	observer *observability.StandardObserver
}

// Job is one item tagged with its input position
type Job[T any] struct {
	Index int
	Item  T
}

// Result carries a processed item back with its input position
type Result[R any] struct {
	Index    int
	WorkerID int
	Value    R
}

// NewWorkerPool creates a new worker pool. workers below 1 are raised to 1.
func NewWorkerPool[T, R any](workers int, process ProcessFunc[T, R], observer *observability.StandardObserver) *WorkerPool[T, R] {
	if workers < 1 {
		workers = 1
	}

	return &WorkerPool[T, R]{
		workers:  workers,
		jobs:     make(chan Job[T], workers*2),
		results:  make(chan Result[R], workers*2),
		process:  process,
		observer: observer,
	}
}

// Workers returns the number of worker goroutines
func (wp *WorkerPool[T, R]) Workers() int {
	return wp.workers
}

// Start initializes worker goroutines
func (wp *WorkerPool[T, R]) Start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}

	// Close results once every worker has drained the job queue
	go func() {
		wp.wg.Wait()
		close(wp.results)
	}()
}

// Submit adds a job to the queue, blocking while the queue is full
func (wp *WorkerPool[T, R]) Submit(job Job[T]) {
	wp.jobs <- job
}

// Close signals that no more jobs will be submitted
func (wp *WorkerPool[T, R]) Close() {
	close(wp.jobs)
}

// Results returns the results channel. It is closed after Close once all
// submitted jobs are processed.
func (wp *WorkerPool[T, R]) Results() <-chan Result[R] {
	return wp.results
}

// worker processes jobs from the queue
func (wp *WorkerPool[T, R]) worker(id int) {
	defer wp.wg.Done()

	processed := 0
	for job := range wp.jobs {
		wp.results <- Result[R]{
			Index:    job.Index,
			WorkerID: id,
			Value:    wp.process(id, job.Item),
		}
		processed++
	}

	if wp.observer != nil && wp.observer.DebugObserver != nil {
		wp.observer.LogDetail("worker_pool", workerSummary(id, processed))
	}
}
