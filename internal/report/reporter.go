// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package report renders one line per folder plus a run summary.
package report

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"

	"folder-namer/internal/parallel"
	"folder-namer/internal/renamer"
)

// Summary counts folder outcomes across one run.
type Summary struct {
	Same     int
	Previews int
	Renamed  int
	Skipped  int
	Failed   int
}

// Total returns the number of folders processed.
func (s Summary) Total() int {
	return s.Same + s.Previews + s.Renamed + s.Skipped + s.Failed
}

// Reporter writes per-folder status lines and accumulates the summary.
// Safe for concurrent use by workers.
type Reporter struct {
	mu      sync.Mutex
	out     io.Writer
	colors  map[string]*color.Color
	summary Summary
}

// NewReporter creates a reporter writing to out. Colors are disabled when
// noColor is set or when out is not a terminal.
func NewReporter(out io.Writer, noColor bool) *Reporter {
	if noColor || !isTerminal(out) {
		color.NoColor = true
	}
	return &Reporter{
		out: out,
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

// Folder renders the one-line outcome for a processed folder.
func (r *Reporter) Folder(res parallel.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res.Skipped {
		r.summary.Skipped++
		r.line("yellow", "[SKIP]", "%s  %s", res.Rename.OldName, res.SkipReason)
		return
	}

	switch res.Rename.Outcome {
	case renamer.OutcomeSame:
		r.summary.Same++
		r.line("cyan", "[SAME]", "%s", res.Rename.OldName)
	case renamer.OutcomePreview:
		r.summary.Previews++
		r.line("white", "[DRY] ", "%s -> %s", res.Rename.OldName, res.Rename.NewName)
	case renamer.OutcomeRenamed:
		r.summary.Renamed++
		r.line("green", "[OK]  ", "%s -> %s", res.Rename.OldName, res.Rename.NewName)
	case renamer.OutcomeFailed:
		r.summary.Failed++
		r.line("red", "[FAIL]", "%s -> %s  (%v)", res.Rename.OldName, res.Rename.NewName, res.Rename.Err)
	}
}

// Waiting renders a retry notice for a transiently locked folder.
func (r *Reporter) Waiting(name string, attempt, maxRetries int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.line("yellow", "[WAIT]", "%s locked (attempt %d/%d), retrying", name, attempt, maxRetries)
}

// Finish renders the run summary and returns it.
func (r *Reporter) Finish(preview bool) Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.summary
	fmt.Fprintf(r.out, "\n%d folders: %d already correct, %d renamed, %d skipped, %d failed\n",
		s.Total(), s.Same, s.Renamed+s.Previews, s.Skipped, s.Failed)
	if preview && s.Previews > 0 {
		fmt.Fprintln(r.out, "Preview mode: no folders were changed. Re-run with -apply to commit.")
	}
	return s
}

func (r *Reporter) line(colorName, tag, format string, args ...any) {
	c, ok := r.colors[colorName]
	if !ok {
		c = r.colors["white"]
	}
	fmt.Fprintf(r.out, "%s %s\n", c.Sprint(tag), fmt.Sprintf(format, args...))
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
