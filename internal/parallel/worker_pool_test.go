// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"folder-namer/internal/evidence"
	"folder-namer/internal/renamer"
)

func TestWorkerPoolProcessesAllTasks(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[string]bool)

	process := func(ctx context.Context, task evidence.FolderTask) Result {
		mu.Lock()
		seen[task.ID] = true
		mu.Unlock()
		return Result{Task: task, Rename: renamer.Result{Outcome: renamer.OutcomeSame}}
	}

	pool := NewWorkerPool(4, process, nil)
	pool.Start()

	tasks := []evidence.FolderTask{
		{ID: "11111111", Path: "/tmp/a"},
		{ID: "22222222", Path: "/tmp/b"},
		{ID: "33333333", Path: "/tmp/c"},
	}
	go func() {
		for _, task := range tasks {
			pool.Submit(task)
		}
		pool.Close()
	}()
	go pool.Stop()

	count := 0
	for range pool.Results() {
		count++
	}

	assert.Equal(t, len(tasks), count)
	mu.Lock()
	defer mu.Unlock()
	for _, task := range tasks {
		assert.True(t, seen[task.ID])
	}
}

func TestWorkerPoolMinimumOneWorker(t *testing.T) {
	pool := NewWorkerPool(0, func(ctx context.Context, task evidence.FolderTask) Result {
		return Result{Task: task}
	}, nil)
	assert.Equal(t, 1, pool.workers)
	pool.Start()
	pool.Close()
	pool.Stop()
}

func TestWorkerPoolSkipResultPassthrough(t *testing.T) {
	process := func(ctx context.Context, task evidence.FolderTask) Result {
		return Result{Task: task, Skipped: true, SkipReason: "no reliable name"}
	}

	pool := NewWorkerPool(1, process, nil)
	pool.Start()
	go func() {
		pool.Submit(evidence.FolderTask{ID: "44444444", Path: "/tmp/d"})
		pool.Close()
	}()
	go pool.Stop()

	results := make([]Result, 0, 1)
	for res := range pool.Results() {
		results = append(results, res)
	}
	assert.Len(t, results, 1)
	assert.True(t, results[0].Skipped)
	assert.Equal(t, "no reliable name", results[0].SkipReason)
}
