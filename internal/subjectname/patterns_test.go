// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package subjectname

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folder-namer/internal/lexicon"
	"folder-namer/internal/normalize"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	lex, err := lexicon.Default()
	require.NoError(t, err)
	return NewMatcher(lex)
}

func matchesOfForm(matches []RawMatch, form Form) []RawMatch {
	var out []RawMatch
	for _, m := range matches {
		if m.Form == form {
			out = append(out, m)
		}
	}
	return out
}

func TestFindAllCommaForm(t *testing.T) {
	m := newTestMatcher(t)
	matches := matchesOfForm(m.FindAll("Wynn, Hannah Immunizations"), FormComma)
	require.NotEmpty(t, matches)
	assert.Equal(t, "Wynn", matches[0].Last)
	assert.Equal(t, "Hannah Immunizations", matches[0].First)
	assert.True(t, matches[0].HadSeparator)
	assert.False(t, matches[0].Declared)
}

func TestFindAllSemicolonForm(t *testing.T) {
	m := newTestMatcher(t)
	matches := matchesOfForm(m.FindAll("Wynn; Hannah"), FormSemicolon)
	require.Len(t, matches, 1)
	assert.Equal(t, "Wynn", matches[0].Last)
	assert.Equal(t, "Hannah", matches[0].First)
	assert.True(t, matches[0].HadSeparator)
}

func TestFindAllSpaceFormIsFlipped(t *testing.T) {
	m := newTestMatcher(t)
	matches := matchesOfForm(m.FindAll("Hannah Wynn"), FormSpace)
	require.Len(t, matches, 1)
	assert.Equal(t, "Wynn", matches[0].Last, "bare juxtaposition is emitted as (last, first)")
	assert.Equal(t, "Hannah", matches[0].First)
	assert.False(t, matches[0].HadSeparator)
}

func TestFindAllDeclaredName(t *testing.T) {
	m := newTestMatcher(t)
	text := normalize.Text("Student Name: Abdulraheem, Hanan Grade: 7")
	matches := matchesOfForm(m.FindAll(text), FormDeclared)
	require.Len(t, matches, 1)
	assert.Equal(t, "Abdulraheem", matches[0].Last)
	assert.Equal(t, "Hanan", matches[0].First, "trailing Grade label must not be swallowed")
	assert.True(t, matches[0].Declared)
	assert.True(t, matches[0].HadSeparator)
}

func TestFindAllDeclaredNameVariants(t *testing.T) {
	m := newTestMatcher(t)
	for _, text := range []string{
		"Student's Name: Doe, Jane Date: 01/02/2026",
		"student name - Doe; Jane Page 1",
		"STUDENT NAME: Doe, Jane Lower School",
	} {
		matches := matchesOfForm(m.FindAll(text), FormDeclared)
		require.Len(t, matches, 1, "text %q", text)
		assert.Equal(t, "Doe", matches[0].Last)
		assert.Equal(t, "Jane", matches[0].First)
	}
}

func TestDeclaredNameDoesNotFireForOtherLabels(t *testing.T) {
	m := newTestMatcher(t)
	matches := matchesOfForm(m.FindAll("Contact Person's Name: Smith, John"), FormDeclared)
	assert.Empty(t, matches)
}

func TestAllFormsSearchedTogether(t *testing.T) {
	m := newTestMatcher(t)
	matches := m.FindAll("Wynn, Hannah and Hannah Wynn")
	assert.NotEmpty(t, matchesOfForm(matches, FormComma))
	assert.NotEmpty(t, matchesOfForm(matches, FormSpace))
}

func TestPrecleanFilename(t *testing.T) {
	m := newTestMatcher(t)
	tests := []struct {
		input    string
		expected string
	}{
		{"Wynn, Hannah - Immunizations.pdf", "Wynn, Hannah Immunizations"},
		{"Data Verification Hannah Wynn.pdf", "Hannah Wynn"},
		{"All Divisions DVF Wynn, Hannah.pdf", "Wynn, Hannah"},
		{"Student Name Wynn_Hannah.pdf", "Wynn Hannah"},
		{"plain.txt", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, m.PrecleanFilename(tt.input), "input %q", tt.input)
	}
}
