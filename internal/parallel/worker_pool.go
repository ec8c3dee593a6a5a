// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel distributes folder tasks across workers. Folders are
// independent units of work; the only shared mutable resource is the
// directory namespace, which the rename executor serializes itself.
package parallel

import (
	"context"
	"sync"
	"time"

	"folder-namer/internal/evidence"
	"folder-namer/internal/observability"
	"folder-namer/internal/renamer"
)

// Result is the outcome of processing one folder.
type Result struct {
	Task       evidence.FolderTask
	Rename     renamer.Result
	Skipped    bool
	SkipReason string
	Duration   time.Duration
}

// ProcessFunc resolves and renames one folder.
type ProcessFunc func(ctx context.Context, task evidence.FolderTask) Result

// WorkerPool fans folder tasks out to a fixed number of workers.
type WorkerPool struct {
	workers  int
	jobs     chan evidence.FolderTask
	results  chan Result
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	process  ProcessFunc
	observer *observability.StandardObserver
}

// NewWorkerPool creates a pool. Fewer than one worker means one worker;
// the engine defaults to sequential processing.
func NewWorkerPool(workers int, process ProcessFunc, observer *observability.StandardObserver) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerPool{
		workers:  workers,
		jobs:     make(chan evidence.FolderTask, workers*2),
		results:  make(chan Result, workers*2),
		ctx:      ctx,
		cancel:   cancel,
		process:  process,
		observer: observer,
	}
}

// Start initializes worker goroutines.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

// Submit adds a task to the queue. Blocks when the queue is full.
func (wp *WorkerPool) Submit(task evidence.FolderTask) {
	select {
	case wp.jobs <- task:
	case <-wp.ctx.Done():
	}
}

// Close signals that no further tasks will be submitted.
func (wp *WorkerPool) Close() {
	close(wp.jobs)
}

// Results returns the channel of completed folder outcomes. It is closed
// after Close has been called and all workers have drained the queue.
func (wp *WorkerPool) Results() <-chan Result {
	return wp.results
}

// Stop waits for workers to finish and releases the pool.
func (wp *WorkerPool) Stop() {
	wp.wg.Wait()
	close(wp.results)
	wp.cancel()
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.jobs {
		select {
		case <-wp.ctx.Done():
			return
		default:
		}

		start := time.Now()
		result := wp.process(wp.ctx, task)
		result.Duration = time.Since(start)

		wp.observer.LogOperation(observability.StandardObservabilityData{
			Component:  "worker_pool",
			Operation:  "process_folder",
			FolderPath: task.Path,
			DurationMs: result.Duration.Milliseconds(),
			Success:    result.Rename.Err == nil,
		})

		select {
		case wp.results <- result:
		case <-wp.ctx.Done():
			return
		}
	}
}
