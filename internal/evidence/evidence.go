// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package evidence gathers name candidates for one folder and reduces them
// to a single winner. Evidence comes in two tiers: file names first, then
// document contents, and the document tier only runs when file names yield
// nothing usable.
package evidence

import (
	"os"
	"path/filepath"
	"strings"

	"folder-namer/internal/extractors/imagemeta"
	"folder-namer/internal/extractors/pdftext"
	"folder-namer/internal/lexicon"
	"folder-namer/internal/normalize"
	"folder-namer/internal/observability"
	"folder-namer/internal/subjectname"
)

// FolderTask identifies one ID-shaped folder to resolve.
type FolderTask struct {
	ID   string
	Path string
}

// Aggregator runs the two-tier evidence search for folders.
type Aggregator struct {
	matcher   *subjectname.Matcher
	validator *subjectname.Validator
	weights   subjectname.Weights
	pdf       *pdftext.Extractor
	observer  *observability.StandardObserver
}

// NewAggregator wires the matcher, validator, and extractors together.
func NewAggregator(lex *lexicon.Lexicon, weights subjectname.Weights, contextWindow, pageBudget int, observer *observability.StandardObserver) *Aggregator {
	return &Aggregator{
		matcher:   subjectname.NewMatcher(lex),
		validator: subjectname.NewValidator(lex, contextWindow),
		weights:   weights,
		pdf:       pdftext.NewExtractor(pageBudget),
		observer:  observer,
	}
}

// DeriveName resolves the subject name for one folder. It scans every
// file name first; only when that tier produces no validated candidate
// does it open documents. Returns false when no reliable name was found.
func (a *Aggregator) DeriveName(task FolderTask) (subjectname.Candidate, bool) {
	finish := a.observer.StartTiming("evidence", "derive_name", task.Path)

	entries, err := os.ReadDir(task.Path)
	if err != nil {
		finish(false, map[string]any{"error": err.Error()})
		return subjectname.Candidate{}, false
	}

	var filenameCands []subjectname.Candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filenameCands = append(filenameCands, a.CandidatesFromFilename(entry.Name())...)
	}
	if best, ok := subjectname.PickBest(filenameCands); ok {
		finish(true, map[string]any{"tier": "filename", "candidates": len(filenameCands)})
		return best, true
	}

	var docCands []subjectname.Candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(task.Path, entry.Name())
		text := a.documentText(path)
		if text == "" {
			continue
		}
		docCands = append(docCands, a.CandidatesFromText(text)...)
	}

	best, ok := subjectname.PickBest(docCands)
	finish(ok, map[string]any{"tier": "document", "candidates": len(docCands)})
	return best, ok
}

// CandidatesFromFilename extracts validated candidates from one file name.
// File names are too short for context windows, so no context rejection
// applies here.
func (a *Aggregator) CandidatesFromFilename(name string) []subjectname.Candidate {
	base := a.matcher.PrecleanFilename(name)
	if base == "" {
		return nil
	}

	var out []subjectname.Candidate
	for _, raw := range a.matcher.FindAll(base) {
		if raw.Declared {
			// The declared-name rule needs a labeled document line;
			// it has no business in a file name.
			continue
		}
		if c, ok := a.buildCandidate(raw, subjectname.SourceFilename); ok {
			out = append(out, c)
		}
	}
	return out
}

// CandidatesFromText extracts validated candidates from document text.
// Declared-name matches bypass the context check: their own label is the
// context. All other matches are dropped when reject vocabulary appears
// within the window around them.
func (a *Aggregator) CandidatesFromText(text string) []subjectname.Candidate {
	text = normalize.Text(text)

	var out []subjectname.Candidate
	for _, raw := range a.matcher.FindAll(text) {
		if !raw.Declared && a.validator.RejectedByContext(text, raw.Start, raw.End) {
			a.observer.LogOperation(observability.StandardObservabilityData{
				Component: "evidence",
				Operation: "context_reject",
				Success:   true,
				Metadata:  map[string]any{"last": raw.Last, "first": raw.First},
			})
			continue
		}
		if c, ok := a.buildCandidate(raw, subjectname.SourceDocument); ok {
			out = append(out, c)
		}
	}
	return out
}

// buildCandidate validates and scores one raw match.
func (a *Aggregator) buildCandidate(raw subjectname.RawMatch, source subjectname.Source) (subjectname.Candidate, bool) {
	last, first, ok := a.validator.CleanPair(raw.Last, raw.First)
	if !ok {
		return subjectname.Candidate{}, false
	}
	c := subjectname.Candidate{
		Last:         last,
		First:        first,
		Source:       source,
		HadSeparator: raw.HadSeparator,
		NearAnchor:   raw.Declared,
		Declared:     raw.Declared,
	}
	c.Score = a.weights.Score(c)
	return c, true
}

// documentText reads searchable text out of one document. Unsupported or
// unreadable files contribute nothing.
func (a *Aggregator) documentText(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		if err := a.pdf.Validate(path); err != nil {
			a.observer.LogOperation(observability.StandardObservabilityData{
				Component: "evidence",
				Operation: "pdf_validate",
				FilePath:  path,
				Success:   false,
				Error:     err.Error(),
			})
			return ""
		}
		text, err := a.pdf.ExtractText(path)
		if err != nil {
			a.observer.LogOperation(observability.StandardObservabilityData{
				Component: "evidence",
				Operation: "pdf_extract",
				FilePath:  path,
				Success:   false,
				Error:     err.Error(),
			})
			return ""
		}
		return text
	case ".jpg", ".jpeg", ".tif", ".tiff":
		text, err := imagemeta.ExtractText(path)
		if err != nil {
			return ""
		}
		return text
	default:
		return ""
	}
}
