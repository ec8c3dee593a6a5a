// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core drives one run of the engine: enumerate ID-shaped child
// folders under the root, derive a name for each, and hand winners to the
// rename executor. One folder's failure never aborts the run.
package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"folder-namer/internal/config"
	"folder-namer/internal/evidence"
	"folder-namer/internal/lexicon"
	"folder-namer/internal/observability"
	"folder-namer/internal/parallel"
	"folder-namer/internal/renamer"
	"folder-namer/internal/report"
	"folder-namer/internal/resilience"
)

// Engine processes every ID-shaped folder under a root directory.
type Engine struct {
	cfg        *config.Config
	idPattern  *regexp.Regexp
	aggregator *evidence.Aggregator
	executor   *renamer.Executor
	reporter   *report.Reporter
	observer   *observability.StandardObserver
	apply      bool
	workers    int
}

// NewEngine wires the pipeline. apply=false runs in preview mode.
func NewEngine(cfg *config.Config, apply bool, reporter *report.Reporter, observer *observability.StandardObserver) (*Engine, error) {
	idPattern, err := regexp.Compile(cfg.Defaults.IDPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid id pattern: %w", err)
	}

	var lex *lexicon.Lexicon
	if cfg.LexiconFile != "" {
		lex, err = lexicon.LoadFile(cfg.LexiconFile)
	} else {
		lex, err = lexicon.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("loading lexicon: %w", err)
	}

	aggregator := evidence.NewAggregator(lex, cfg.Weights, cfg.Defaults.ContextWindow, cfg.Defaults.PageBudget, observer)

	retryCfg := resilience.RetryConfig{
		MaxRetries: cfg.Retry.MaxRetries,
		Interval:   cfg.RetryInterval(),
	}
	executor := renamer.NewExecutor(apply, retryCfg, observer)
	executor.OnWait = reporter.Waiting

	return &Engine{
		cfg:        cfg,
		idPattern:  idPattern,
		aggregator: aggregator,
		executor:   executor,
		reporter:   reporter,
		observer:   observer,
		apply:      apply,
		workers:    cfg.Defaults.Workers,
	}, nil
}

// Run processes all folders under root and returns the run summary.
// The returned error covers setup problems only; per-folder failures are
// reported and counted, never propagated.
func (e *Engine) Run(ctx context.Context, root string) (report.Summary, error) {
	finish := e.observer.StartTiming("engine", "run", root)

	tasks, err := e.collectTasks(root)
	if err != nil {
		finish(false, map[string]any{"error": err.Error()})
		return report.Summary{}, err
	}

	pool := parallel.NewWorkerPool(e.workers, e.processFolder, e.observer)
	pool.Start()
	go func() {
		for _, task := range tasks {
			pool.Submit(task)
		}
		pool.Close()
	}()
	go pool.Stop()

	for res := range pool.Results() {
		e.reporter.Folder(res)
	}

	summary := e.reporter.Finish(!e.apply)
	finish(true, map[string]any{"folders": summary.Total(), "failed": summary.Failed})
	return summary, nil
}

// collectTasks lists the immediate child directories of root whose names
// carry the identifying prefix. Already-renamed folders still qualify, so
// a second run sees them again and reports them as unchanged.
func (e *Engine) collectTasks(root string) ([]evidence.FolderTask, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading root directory: %w", err)
	}

	var tasks []evidence.FolderTask
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := e.idPattern.FindString(entry.Name())
		if id == "" {
			continue
		}
		tasks = append(tasks, evidence.FolderTask{
			ID:   id,
			Path: filepath.Join(root, entry.Name()),
		})
	}
	return tasks, nil
}

// processFolder resolves one folder and, when a name is found, executes
// the rename plan.
func (e *Engine) processFolder(ctx context.Context, task evidence.FolderTask) parallel.Result {
	best, ok := e.aggregator.DeriveName(task)
	if !ok {
		return parallel.Result{
			Task:       task,
			Skipped:    true,
			SkipReason: "no reliable name",
			Rename:     renamer.Result{OldName: filepath.Base(task.Path)},
		}
	}

	plan := renamer.RenamePlan{
		SourcePath:      task.Path,
		DestinationName: renamer.DestinationName(task.ID, best.Last, best.First),
	}
	return parallel.Result{Task: task, Rename: e.executor.Execute(ctx, plan)}
}
