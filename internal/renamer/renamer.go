// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package renamer commits the winning name to the filesystem. The only
// mutation in the whole engine is the single rename of a folder, performed
// here with collision disambiguation and bounded retry on transient locks.
package renamer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"folder-namer/internal/normalize"
	"folder-namer/internal/observability"
	"folder-namer/internal/platform"
	"folder-namer/internal/resilience"
)

// Outcome is the terminal state of one rename attempt.
type Outcome int

const (
	OutcomeSame Outcome = iota
	OutcomePreview
	OutcomeRenamed
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSame:
		return "SAME"
	case OutcomePreview:
		return "DRY"
	case OutcomeRenamed:
		return "OK"
	case OutcomeFailed:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// RenamePlan is a resolved source-to-destination pair. It exists only for
// the duration of one attempt and is never persisted.
type RenamePlan struct {
	SourcePath      string
	DestinationName string
}

// Result reports what happened to one folder.
type Result struct {
	OldName  string
	NewName  string
	Outcome  Outcome
	Collided bool
	Attempts int
	Err      error
}

// Executor performs rename attempts. Destination uniqueness checks and the
// rename itself are serialized under one mutex so concurrent workers cannot
// compute the same disambiguated name and race to create it.
type Executor struct {
	apply    bool
	retry    resilience.RetryConfig
	observer *observability.StandardObserver

	// OnWait, when set, is invoked before each retry of a transiently
	// locked rename so the caller can surface progress.
	OnWait func(oldName string, attempt, maxRetries int)

	mu sync.Mutex
}

// NewExecutor creates an executor. apply=false keeps every attempt in
// preview mode and never touches the filesystem.
func NewExecutor(apply bool, retry resilience.RetryConfig, observer *observability.StandardObserver) *Executor {
	return &Executor{apply: apply, retry: retry, observer: observer}
}

// DestinationName builds the canonical folder name "<ID> - <Last>, <First>".
// Any occurrence of the ID already embedded in the name fragment is stripped
// in one pass before the ID is re-inserted at the canonical position, so the
// result always carries exactly one occurrence of the key.
func DestinationName(id, last, first string) string {
	fragment := fmt.Sprintf("%s, %s", last, first)
	fragment = strings.ReplaceAll(fragment, id, "")
	fragment = strings.ReplaceAll(normalize.Text(fragment), " ,", ",")
	fragment = strings.Trim(fragment, " -,")
	return platform.SanitizeComponent(fmt.Sprintf("%s - %s", id, fragment))
}

// Execute runs the state machine for one folder: no-op when the name is
// already canonical, disambiguate on collision, stop before mutation in
// preview mode, and otherwise rename with retry on transient lock errors.
func (e *Executor) Execute(ctx context.Context, plan RenamePlan) Result {
	oldName := filepath.Base(plan.SourcePath)
	parent := filepath.Dir(plan.SourcePath)

	if plan.DestinationName == oldName || isDisambiguated(oldName, plan.DestinationName) {
		return Result{OldName: oldName, NewName: oldName, Outcome: OutcomeSame}
	}

	finish := e.observer.StartTiming("renamer", "execute", plan.SourcePath)

	e.mu.Lock()
	defer e.mu.Unlock()

	finalName, collided := e.resolveCollision(parent, plan.DestinationName)

	if !e.apply {
		finish(true, map[string]any{"preview": true, "destination": finalName})
		return Result{OldName: oldName, NewName: finalName, Outcome: OutcomePreview, Collided: collided}
	}

	retryCfg := e.retry
	if e.OnWait != nil {
		retryCfg.OnRetry = func(attempt int, err error) {
			e.OnWait(oldName, attempt, retryCfg.MaxRetries)
		}
	}

	attempts := 0
	err := resilience.Retry(ctx, retryCfg, func(ctx context.Context) error {
		attempts++
		if renameErr := os.Rename(plan.SourcePath, filepath.Join(parent, finalName)); renameErr != nil {
			return resilience.ClassifyError(renameErr)
		}
		return nil
	})
	if err != nil {
		finish(false, map[string]any{"attempts": attempts, "error": err.Error()})
		return Result{OldName: oldName, NewName: finalName, Outcome: OutcomeFailed, Collided: collided, Attempts: attempts, Err: err}
	}

	finish(true, map[string]any{"attempts": attempts, "destination": finalName})
	return Result{OldName: oldName, NewName: finalName, Outcome: OutcomeRenamed, Collided: collided, Attempts: attempts}
}

// resolveCollision returns a destination base name that no existing entry
// occupies, appending " (1)", " (2)", ... as needed. An occupied name is
// never reused.
func (e *Executor) resolveCollision(parent, base string) (string, bool) {
	if !exists(filepath.Join(parent, base)) {
		return base, false
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)", base, i)
		if !exists(filepath.Join(parent, candidate)) {
			return candidate, true
		}
	}
}

// isDisambiguated reports whether name is base plus a numeric suffix of the
// form " (N)". Such a folder already carries its canonical name from an
// earlier collision-resolved run and must not be renamed again.
func isDisambiguated(name, base string) bool {
	if !strings.HasPrefix(name, base+" (") || !strings.HasSuffix(name, ")") {
		return false
	}
	digits := name[len(base)+2 : len(name)-1]
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
