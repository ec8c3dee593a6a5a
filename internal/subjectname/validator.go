// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package subjectname

import (
	"regexp"
	"strings"

	"folder-namer/internal/lexicon"
	"folder-namer/internal/normalize"
)

// DefaultContextWindow is the number of characters inspected on each side of
// a document-body match for disqualifying phrases.
const DefaultContextWindow = 80

// Validator rejects raw matches that are lexically name-shaped but
// semantically administrative boilerplate. It consults the lexicon for
// stopwords, banned pairs, and the label and context-phrase vocabularies.
type Validator struct {
	lex *lexicon.Lexicon

	labelTail     *regexp.Regexp
	contextReject *regexp.Regexp
	window        int
}

// NewValidator builds a validator over the given lexicon. contextWindow <= 0
// selects the default window size.
func NewValidator(lex *lexicon.Lexicon, contextWindow int) *Validator {
	if contextWindow <= 0 {
		contextWindow = DefaultContextWindow
	}
	return &Validator{
		lex:           lex,
		labelTail:     tailAlternation(lex.LabelTails),
		contextReject: phraseAlternation(lex.ContextReject),
		window:        contextWindow,
	}
}

// tailAlternation matches a run of known label words anchored at the end of a
// name side, including anything after the first label word.
func tailAlternation(tails []string) *regexp.Regexp {
	if len(tails) == 0 {
		return nil
	}
	alts := make([]string, len(tails))
	for i, tail := range tails {
		words := strings.Fields(tail)
		for j, w := range words {
			words[j] = regexp.QuoteMeta(w)
		}
		alts[i] = strings.Join(words, `\s+`)
	}
	return regexp.MustCompile(`(?i)\s+(?:` + strings.Join(alts, "|") + `)\b.*$`)
}

// CleanPair validates and cleans a raw (last, first) capture. It returns the
// cleaned pair and whether the candidate survives. A candidate fails when
// either side reduces to nothing, when the pair is banned boilerplate, or
// when any remaining token fails the token filter.
func (v *Validator) CleanPair(last, first string) (string, string, bool) {
	// Acronyms must be screened before capitalization erases their case.
	last = v.cleanSide(normalize.Capitalize(stripAcronyms(last)))
	first = v.cleanSide(normalize.Capitalize(stripAcronyms(first)))
	if last == "" || first == "" {
		return "", "", false
	}

	if v.lex.IsBannedPair(last, first) {
		return "", "", false
	}

	for _, tok := range strings.Fields(last + " " + first) {
		if !v.tokenOK(tok) && !v.lex.IsSuffix(tok) {
			return "", "", false
		}
	}

	return last, first, true
}

// cleanSide cleans one side of a name ("Last" or "First Middle"): trailing
// label fragments are stripped, then only tokens that look like real name
// pieces are kept.
func (v *Validator) cleanSide(side string) string {
	side = v.stripLabels(side)
	tokens := strings.Fields(strings.ReplaceAll(side, ",", " "))
	keep := tokens[:0]
	for _, tok := range tokens {
		if v.lex.IsSuffix(tok) || v.tokenOK(tok) {
			keep = append(keep, tok)
		}
	}
	return strings.Join(keep, " ")
}

// stripLabels removes trailing label chunks and blanks a side that is itself
// a lone stopword.
func (v *Validator) stripLabels(side string) string {
	side = strings.TrimSpace(side)
	if side == "" {
		return ""
	}
	if v.labelTail != nil {
		side = strings.TrimSpace(v.labelTail.ReplaceAllString(side, ""))
	}
	if v.lex.IsStopword(side) {
		return ""
	}
	return side
}

// tokenOK reports whether a single word is allowed inside a real name:
// no digits, not a stopword, and not too short unless allow-listed. Runs on
// capitalization-normalized tokens; the all-caps acronym screen happens
// earlier, on the raw capture.
func (v *Validator) tokenOK(tok string) bool {
	if tok == "" {
		return false
	}
	if strings.ContainsAny(tok, "0123456789") {
		return false
	}
	if strings.Contains(tok, "@") {
		return false
	}
	if v.lex.IsStopword(tok) {
		return false
	}
	if len(tok) <= 2 && !v.lex.IsShortAllowed(tok) && !v.lex.IsSuffix(tok) {
		return false
	}
	return true
}

// stripAcronyms drops all-uppercase tokens longer than three characters
// (NWEA, PSAT, form codes) from a raw capture. It must see the capture
// before capitalization normalization, which lowercases the case signal
// away.
func stripAcronyms(side string) string {
	tokens := strings.Fields(side)
	keep := tokens[:0]
	for _, tok := range tokens {
		if len(tok) > 3 && tok == strings.ToUpper(tok) && strings.ContainsFunc(tok, isLetter) {
			continue
		}
		keep = append(keep, tok)
	}
	return strings.Join(keep, " ")
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// RejectedByContext reports whether a document-body match at [start, end)
// should be disqualified by its surroundings: a window of text on each side
// is scanned for phrases indicating the capture names a third party
// (guardian, contact, emergency) or a form caption rather than the subject.
func (v *Validator) RejectedByContext(text string, start, end int) bool {
	if v.contextReject == nil {
		return false
	}
	lo := max(0, start-v.window)
	hi := min(len(text), end+v.window)
	return v.contextReject.MatchString(text[lo:hi])
}

// ContextWindow returns the configured window size in characters.
func (v *Validator) ContextWindow() int {
	return v.window
}
