// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdftext

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
)

func TestNewExtractorPageBudget(t *testing.T) {
	assert.Equal(t, 3, NewExtractor(0).pageBudget)
	assert.Equal(t, 3, NewExtractor(-1).pageBudget)
	assert.Equal(t, 5, NewExtractor(5).pageBudget)
}

func TestCleanText(t *testing.T) {
	input := "Student Name:   Wynn,  Hannah\n\n\n  Grade   5  \n"
	assert.Equal(t, "Student Name: Wynn, Hannah\nGrade 5", cleanText(input))
}

func TestCleanTextEmpty(t *testing.T) {
	assert.Equal(t, "", cleanText(""))
	assert.Equal(t, "", cleanText("\n  \n\t\n"))
}

func TestReconstructRowText(t *testing.T) {
	// Elements deliberately out of X order with a gap between words.
	elements := []pdf.Text{
		{S: "Hannah", X: 100, W: 60, FontSize: 12},
		{S: "Wynn,", X: 50, W: 45, FontSize: 12},
	}
	assert.Equal(t, "Wynn, Hannah", reconstructRowText(elements))
}

func TestReconstructRowTextAdjacentGlyphs(t *testing.T) {
	// Glyphs with no horizontal gap stay joined.
	elements := []pdf.Text{
		{S: "Wy", X: 50, W: 20, FontSize: 12},
		{S: "nn", X: 70, W: 20, FontSize: 12},
	}
	assert.Equal(t, "Wynn", reconstructRowText(elements))
}

func TestExtractTextMissingFile(t *testing.T) {
	e := NewExtractor(3)
	_, err := e.ExtractText("/nonexistent/file.pdf")
	assert.Error(t, err)
}
