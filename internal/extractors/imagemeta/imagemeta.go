// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package imagemeta harvests descriptive EXIF text from JPEG and TIFF
// files. Scanned verification forms sometimes carry the subject's name in
// description or artist tags, so those strings count as document text.
package imagemeta

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// descriptiveTags are the EXIF fields that can carry free-form text about
// the document subject. Technical fields (exposure, dimensions, GPS) are
// not useful as name evidence.
var descriptiveTags = map[string]bool{
	"ImageDescription": true,
	"Artist":           true,
	"XPTitle":          true,
	"XPAuthor":         true,
	"XPComment":        true,
	"XPSubject":        true,
	"XPKeywords":       true,
	"UserComment":      true,
	"DocumentName":     true,
	"Copyright":        true,
}

// exifWalker implements the Walker interface to collect descriptive tags.
type exifWalker struct {
	tags map[string]string
}

// Walk implements the Walker interface.
func (w *exifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tag == nil || !descriptiveTags[string(name)] {
		return nil
	}
	value := strings.Trim(tag.String(), `" `)
	if value != "" {
		w.tags[string(name)] = value
	}
	return nil
}

// ExtractText returns the descriptive EXIF strings of an image joined as
// lines of text, in stable tag order. Images without EXIF data return an
// error; the caller treats that as no evidence.
func ExtractText(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return "", fmt.Errorf("no EXIF data found: %w", err)
	}

	walker := &exifWalker{tags: make(map[string]string)}
	if err := x.Walk(walker); err != nil {
		return "", fmt.Errorf("error walking EXIF tags: %w", err)
	}

	keys := make([]string, 0, len(walker.tags))
	for name := range walker.tags {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, name := range keys {
		lines = append(lines, walker.tags[name])
	}
	return strings.Join(lines, "\n"), nil
}
