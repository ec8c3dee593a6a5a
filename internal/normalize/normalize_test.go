// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"already normalized", "Wynn, Hannah", "Wynn, Hannah"},
		{"nbsp", "Wynn, Hannah", "Wynn, Hannah"},
		{"em dash", "Wynn, Hannah—Immunizations", "Wynn, Hannah-Immunizations"},
		{"en dash", "2019–2020", "2019-2020"},
		{"figure dash", "a‒b", "a-b"},
		{"whitespace runs", "  John   Q.\tPublic \n", "John Q. Public"},
		{"tabs and newlines", "Jane\tDoe\nSmith", "Jane Doe Smith"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Text(tt.input))
		})
	}
}

func TestTextIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Wynn, Hannah",
		"  spaced   out — text  ",
		"Student Name: Abdulraheem, Hanan Grade: 7",
	}
	for _, in := range inputs {
		once := Text(in)
		assert.Equal(t, once, Text(once), "normalizing twice must equal normalizing once for %q", in)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hANNAH wYNN", "Hannah Wynn"},
		{"o'brien", "O'brien"},
		{"MARY-JANE", "Mary-jane"},
		{"édith", "Édith"},
		{"ÉDITH piaf", "Édith Piaf"},
		{"", ""},
		{"abdulraheem, hanan", "Abdulraheem, Hanan"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Capitalize(tt.input))
	}
}
