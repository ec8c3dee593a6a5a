// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package evidence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folder-namer/internal/lexicon"
	"folder-namer/internal/subjectname"
)

func newTestAggregator(t *testing.T) *Aggregator {
	t.Helper()
	lex, err := lexicon.Default()
	require.NoError(t, err)
	return NewAggregator(lex, subjectname.DefaultWeights(), subjectname.DefaultContextWindow, 3, nil)
}

func TestCandidatesFromFilenameCommaForm(t *testing.T) {
	a := newTestAggregator(t)

	cands := a.CandidatesFromFilename("Wynn, Hannah - Report Card.pdf")
	require.NotEmpty(t, cands)
	assert.Equal(t, "Wynn", cands[0].Last)
	assert.Equal(t, "Hannah", cands[0].First)
	assert.Equal(t, subjectname.SourceFilename, cands[0].Source)
	assert.True(t, cands[0].HadSeparator)
}

func TestCandidatesFromFilenameFlipsBareForm(t *testing.T) {
	a := newTestAggregator(t)

	cands := a.CandidatesFromFilename("Hannah Wynn Transcript.pdf")
	found := false
	for _, c := range cands {
		if c.Last == "Wynn" && c.First == "Hannah" {
			found = true
			assert.False(t, c.HadSeparator)
		}
	}
	assert.True(t, found, "expected flipped (Wynn, Hannah) candidate")
}

func TestCandidatesFromFilenameNoiseOnly(t *testing.T) {
	a := newTestAggregator(t)
	assert.Empty(t, a.CandidatesFromFilename("Data Verification Form 2024.pdf"))
}

func TestCandidatesFromTextDeclaredBypassesContextReject(t *testing.T) {
	a := newTestAggregator(t)

	// The label itself contains reject-adjacent vocabulary; the declared
	// rule must still fire.
	text := "Data Verification Form\nStudent Name: Abdulraheem, Hanan Grade: 7\nParent/Guardian: Smith, John"
	cands := a.CandidatesFromText(text)

	var declared *subjectname.Candidate
	for i := range cands {
		if cands[i].Declared {
			declared = &cands[i]
		}
	}
	require.NotNil(t, declared, "declared-name candidate missing")
	assert.Equal(t, "Abdulraheem", declared.Last)
	assert.Equal(t, "Hanan", declared.First)
	assert.True(t, declared.NearAnchor)
}

func TestCandidatesFromTextRejectsGuardianContext(t *testing.T) {
	a := newTestAggregator(t)

	text := "Parent/Guardian Name: Smith, John"
	for _, c := range a.CandidatesFromText(text) {
		assert.False(t, c.Last == "Smith" && c.First == "John",
			"guardian name must be rejected by context")
	}
}

func TestDeclaredOutscoresOrdinaryDocumentMatch(t *testing.T) {
	a := newTestAggregator(t)

	text := "Student Name: Wynn, Hannah\nTeacher of record is Carter, Emily for this class"
	best, ok := subjectname.PickBest(a.CandidatesFromText(text))
	require.True(t, ok)
	assert.Equal(t, "Wynn", best.Last)
	assert.Equal(t, "Hannah", best.First)
}

func TestDeriveNameFilenameTierShortCircuits(t *testing.T) {
	a := newTestAggregator(t)
	dir := t.TempDir()

	// The file is not a real PDF; the filename tier must win before any
	// document is opened.
	err := os.WriteFile(filepath.Join(dir, "Wynn, Hannah - Report.pdf"), []byte("junk"), 0644)
	require.NoError(t, err)

	best, ok := a.DeriveName(FolderTask{ID: "12345678", Path: dir})
	require.True(t, ok)
	assert.Equal(t, "Wynn", best.Last)
	assert.Equal(t, "Hannah", best.First)
	assert.Equal(t, subjectname.SourceFilename, best.Source)
}

func TestDeriveNameNoEvidence(t *testing.T) {
	a := newTestAggregator(t)
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "scan001.pdf"), []byte("junk"), 0644)
	require.NoError(t, err)

	_, ok := a.DeriveName(FolderTask{ID: "12345678", Path: dir})
	assert.False(t, ok)
}

func TestDeriveNameMissingFolder(t *testing.T) {
	a := newTestAggregator(t)
	_, ok := a.DeriveName(FolderTask{ID: "12345678", Path: "/nonexistent/folder"})
	assert.False(t, ok)
}
