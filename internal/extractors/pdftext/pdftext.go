// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pdftext extracts text from the leading pages of PDF documents.
// Extraction is evidence gathering, not conversion: failures yield empty
// text so the caller can move on to the next document.
package pdftext

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// DefaultPageBudget bounds how many leading pages are read per document.
const DefaultPageBudget = 3

// Extractor reads bounded text from PDF files.
type Extractor struct {
	pageBudget int
	pdfConfig  *model.Configuration
}

// NewExtractor creates an extractor with the given page budget.
// A budget below 1 falls back to DefaultPageBudget.
func NewExtractor(pageBudget int) *Extractor {
	if pageBudget < 1 {
		pageBudget = DefaultPageBudget
	}
	pdfConfig := model.NewDefaultConfiguration()
	pdfConfig.ValidationMode = model.ValidationRelaxed
	return &Extractor{pageBudget: pageBudget, pdfConfig: pdfConfig}
}

// Validate checks that the file is a structurally sound PDF.
func (e *Extractor) Validate(filePath string) error {
	if err := api.ValidateFile(filePath, e.pdfConfig); err != nil {
		return fmt.Errorf("invalid PDF file: %w", err)
	}
	return nil
}

// ExtractText returns the text of the first pages of the PDF, up to the
// page budget. A document that cannot be opened or parsed returns an
// error; individual unreadable pages are skipped silently.
func (e *Extractor) ExtractText(filePath string) (text string, err error) {
	// The underlying parser panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("PDF parse failure: %v", r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	if pageCount > e.pageBudget {
		pageCount = e.pageBudget
	}

	var buf bytes.Buffer
	for i := 1; i <= pageCount; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		pageText, pageErr := extractPageText(p)
		if pageErr != nil {
			continue
		}
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(pageText)
	}

	return cleanText(buf.String()), nil
}

// extractPageText extracts text using row-based positioning for better
// spacing, falling back to plain extraction when rows are unavailable.
func extractPageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return p.GetPlainText(nil)
	}

	sortedRows := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sortedRows = append(sortedRows, row)
		}
	}

	// PDF Y coordinates grow bottom to top; read top of page first.
	sort.Slice(sortedRows, func(i, j int) bool {
		return averageY(sortedRows[i].Content) > averageY(sortedRows[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sortedRows {
		rowText := reconstructRowText(row.Content)
		if strings.TrimSpace(rowText) != "" {
			buf.WriteString(rowText)
			buf.WriteString("\n")
		}
	}
	return buf.String(), nil
}

func averageY(textElements []pdf.Text) float64 {
	if len(textElements) == 0 {
		return 0
	}
	var totalY float64
	for _, element := range textElements {
		totalY += element.Y
	}
	return totalY / float64(len(textElements))
}

// reconstructRowText joins the text elements of a row left to right,
// inserting spaces at horizontal gaps.
func reconstructRowText(elements []pdf.Text) string {
	if len(elements) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf bytes.Buffer
	var prevEnd float64
	for i, element := range sorted {
		if i > 0 {
			gap := element.X - prevEnd
			if gap > element.FontSize*0.3 {
				buf.WriteString(" ")
			}
		}
		buf.WriteString(element.S)
		prevEnd = element.X + element.W
	}
	return buf.String()
}

// cleanText trims blank lines and collapses runs of spaces within lines.
func cleanText(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
