// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package subjectname

import "strings"

// Weights holds the trust-score policy. The defaults are empirically chosen;
// they are exposed as configuration so they can be recalibrated against a
// labeled dataset instead of edited in code.
type Weights struct {
	Base           int `yaml:"base"`
	SeparatorForm  int `yaml:"separator_form"`
	AnchorPhrase   int `yaml:"anchor_phrase"`
	FilenameSource int `yaml:"filename_source"`
	DocumentSource int `yaml:"document_source"`
	DeclaredRule   int `yaml:"declared_rule"`
	ShortNameBonus int `yaml:"short_name_bonus"`
	LongNamePen    int `yaml:"long_name_penalty"`
	SpacedLastPen  int `yaml:"spaced_last_penalty"`
}

// DefaultWeights returns the default scoring policy. Separator punctuation
// and the declared-name rule dominate; source and token-count terms are
// tie-breaking refinements. The declared-name bonus is large enough to
// outrank any ordinary match.
func DefaultWeights() Weights {
	return Weights{
		Base:           10,
		SeparatorForm:  6,
		AnchorPhrase:   4,
		FilenameSource: 2,
		DocumentSource: 1,
		DeclaredRule:   12,
		ShortNameBonus: 1,
		LongNamePen:    2,
		SpacedLastPen:  2,
	}
}

// Score computes the deterministic trust score for a cleaned candidate.
func (w Weights) Score(c Candidate) int {
	score := w.Base
	if c.HadSeparator {
		score += w.SeparatorForm
	}
	if c.NearAnchor {
		score += w.AnchorPhrase
	}
	switch c.Source {
	case SourceFilename:
		score += w.FilenameSource
	case SourceDocument:
		score += w.DocumentSource
	}
	if c.Declared {
		score += w.DeclaredRule
	}

	tokens := c.tokenCount()
	if tokens <= 3 {
		score += w.ShortNameBonus
	}
	if tokens >= 5 {
		score -= w.LongNamePen
	}
	if strings.Contains(c.Last, " ") {
		score -= w.SpacedLastPen
	}
	return score
}
