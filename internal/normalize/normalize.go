// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)

	// Dash variants that show up in scanned and hand-typed text. All of them
	// collapse to a plain hyphen so the name patterns only have to know one.
	dashReplacer = strings.NewReplacer(
		"‐", "-", // hyphen
		"‑", "-", // non-breaking hyphen
		"‒", "-", // figure dash
		"–", "-", // en dash
		"—", "-", // em dash
	)
)

// Text canonicalizes raw text pulled from a file name or document body:
// non-breaking spaces become ordinary spaces, dash variants collapse to a
// single hyphen, whitespace runs collapse to one space, and the ends are
// trimmed. Idempotent and total on any input.
func Text(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = dashReplacer.Replace(s)
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(s, " "))
}

// Capitalize normalizes capitalization per word: "hANNAH wYNN" -> "Hannah Wynn".
// Apostrophes and hyphens inside a word are preserved as-is.
func Capitalize(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
