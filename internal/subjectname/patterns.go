// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package subjectname

import (
	"path/filepath"
	"regexp"
	"strings"

	"folder-namer/internal/lexicon"
	"folder-namer/internal/normalize"
)

// namePart is one word of a name: starts with a capital letter, then letters,
// apostrophes, periods, or hyphens. Supports compound, hyphenated, and
// suffixed surnames.
const namePart = `[A-Z][a-zA-Z'.\-]+`

// Form is the surface shape a raw match was found under.
type Form int

const (
	FormComma Form = iota
	FormSemicolon
	FormSpace
	FormDeclared
)

func (f Form) String() string {
	switch f {
	case FormComma:
		return "comma"
	case FormSemicolon:
		return "semicolon"
	case FormSpace:
		return "space"
	case FormDeclared:
		return "declared"
	default:
		return "unknown"
	}
}

// RawMatch is an unvalidated (last, first) capture with its evidence shape
// and byte offsets into the searched text, used for context-window checks.
type RawMatch struct {
	Last         string
	First        string
	Form         Form
	HadSeparator bool
	Declared     bool
	Start        int
	End          int
}

// Matcher scans normalized text for name-shaped substrings under the comma,
// semicolon, bare-juxtaposition, and declared-name surface forms. All forms
// are searched; none suppress the others.
type Matcher struct {
	lex *lexicon.Lexicon

	patComma    *regexp.Regexp
	patSemi     *regexp.Regexp
	patSpace    *regexp.Regexp
	patDeclared *regexp.Regexp

	filenameNoise *regexp.Regexp
	declaredStops map[string]bool
}

// NewMatcher compiles the surface-form patterns against the given lexicon.
func NewMatcher(lex *lexicon.Lexicon) *Matcher {
	return &Matcher{
		lex:           lex,
		patComma:      regexp.MustCompile(`\b(` + namePart + `),\s*(` + namePart + `(?:\s+` + namePart + `)*)\b`),
		patSemi:       regexp.MustCompile(`\b(` + namePart + `);\s*(` + namePart + `(?:\s+` + namePart + `)*)\b`),
		patSpace:      regexp.MustCompile(`\b(` + namePart + `)\s+(` + namePart + `(?:\s+` + namePart + `)*)\b`),
		patDeclared:   regexp.MustCompile(`(?i:student\s*'?s?\s*name)\s*[:\-]\s*(` + namePart + `(?:\s+` + namePart + `)*)\s*[;,]\s*(` + namePart + `(?:\s+` + namePart + `)*)`),
		filenameNoise: phraseAlternation(lex.FilenameNoise),
		declaredStops: stopTokens(lex.DeclaredStopLabels),
	}
}

// phraseAlternation builds a case-insensitive, word-bounded alternation from a
// phrase list; spaces inside a phrase match any whitespace run.
func phraseAlternation(phrases []string) *regexp.Regexp {
	if len(phrases) == 0 {
		return nil
	}
	alts := make([]string, len(phrases))
	for i, p := range phrases {
		words := strings.Fields(p)
		for j, w := range words {
			words[j] = regexp.QuoteMeta(w)
		}
		alts[i] = strings.Join(words, `\s+`)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\b`)
}

func stopTokens(labels []string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		// Only the leading word matters for truncation: "Lower School" stops
		// consumption as soon as "Lower" appears in the token stream.
		if fields := strings.Fields(strings.ToLower(l)); len(fields) > 0 {
			set[fields[0]] = true
		}
	}
	return set
}

// FindAll returns every raw match in the normalized text. Bare-juxtaposition
// captures are ambiguous in order, so they are flipped to (last, first) here.
// The declared-name form carries the strongest evidence: its label phrase is
// structurally guaranteed to caption the subject, not a third party.
func (m *Matcher) FindAll(text string) []RawMatch {
	var out []RawMatch

	// Declared-name rule first, scrubbing trailing field labels from the
	// first-name capture so boilerplate is never swallowed.
	for _, idx := range m.patDeclared.FindAllStringSubmatchIndex(text, -1) {
		last := text[idx[2]:idx[3]]
		first := m.truncateAtStopLabel(text[idx[4]:idx[5]])
		if first == "" {
			continue
		}
		out = append(out, RawMatch{
			Last: last, First: first,
			Form: FormDeclared, HadSeparator: true, Declared: true,
			Start: idx[0], End: idx[1],
		})
	}

	for _, p := range []struct {
		pat  *regexp.Regexp
		form Form
		sep  bool
	}{
		{m.patComma, FormComma, true},
		{m.patSemi, FormSemicolon, true},
		{m.patSpace, FormSpace, false},
	} {
		for _, idx := range p.pat.FindAllStringSubmatchIndex(text, -1) {
			a := text[idx[2]:idx[3]]
			b := text[idx[4]:idx[5]]
			match := RawMatch{
				Form: p.form, HadSeparator: p.sep,
				Start: idx[0], End: idx[1],
			}
			if p.form == FormSpace {
				match.Last, match.First = b, a
			} else {
				match.Last, match.First = a, b
			}
			out = append(out, match)
		}
	}

	return out
}

// truncateAtStopLabel cuts a declared-name first-name capture at the first
// known trailing field label (Grade, Date, Page, ...).
func (m *Matcher) truncateAtStopLabel(side string) string {
	tokens := strings.Fields(side)
	for i, tok := range tokens {
		if m.declaredStops[strings.ToLower(tok)] {
			tokens = tokens[:i]
			break
		}
	}
	return strings.Join(tokens, " ")
}

// PrecleanFilename prepares a file name for matching: the extension is
// dropped, underscores and dashes become spaces, known noise phrases are
// scrubbed, and whitespace is re-normalized.
func (m *Matcher) PrecleanFilename(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	base = normalize.Text(base)
	if m.filenameNoise != nil {
		base = m.filenameNoise.ReplaceAllString(base, "")
	}
	return normalize.Text(base)
}
