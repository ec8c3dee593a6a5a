// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package subjectname infers a folder subject's (last, first) name from noisy
// text evidence: it matches name-shaped substrings, filters administrative
// boilerplate through the lexicon, and ranks survivors with a numeric trust
// score.
package subjectname

import (
	"sort"
	"strings"
)

// Source identifies where a candidate's evidence text came from.
type Source int

const (
	SourceFilename Source = iota
	SourceDocument
)

func (s Source) String() string {
	switch s {
	case SourceFilename:
		return "FILENAME"
	case SourceDocument:
		return "DOCUMENT"
	default:
		return "UNKNOWN"
	}
}

// Candidate is a validated, scored hypothesis for the subject's name. It is
// only constructed after both sides have passed validation and is immutable
// once scored.
type Candidate struct {
	Last   string
	First  string
	Score  int
	Source Source

	// Evidence flags, used only to compute the score.
	HadSeparator bool
	NearAnchor   bool
	Declared     bool
}

func (c Candidate) tokenCount() int {
	return len(strings.Fields(c.Last + " " + c.First))
}

func (c Candidate) charLength() int {
	return len(strings.ReplaceAll(c.Last, " ", "")) + len(strings.ReplaceAll(c.First, " ", ""))
}

// PickBest reduces many scored candidates to one winner. Candidates are
// grouped by identical cleaned (last, first) keeping the maximum score per
// group, then sorted by score descending, token count ascending, and total
// character length ascending. Shorter, simpler names win ties because noise
// tends to inflate token count.
func PickBest(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}

	type key struct{ last, first string }
	best := make(map[key]Candidate)
	for _, c := range cands {
		k := key{c.Last, c.First}
		if prev, ok := best[k]; !ok || c.Score > prev.Score {
			best[k] = c
		}
	}

	ranked := make([]Candidate, 0, len(best))
	for _, c := range best {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.tokenCount() != b.tokenCount() {
			return a.tokenCount() < b.tokenCount()
		}
		if a.charLength() != b.charLength() {
			return a.charLength() < b.charLength()
		}
		if a.Last != b.Last {
			return a.Last < b.Last
		}
		return a.First < b.First
	})

	return ranked[0], true
}
