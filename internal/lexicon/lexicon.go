// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package lexicon holds the lexical ground truth consulted during name
// validation: stopwords, banned pairs, short-token and suffix allowances, and
// the phrase vocabularies used for label stripping and context rejection. The
// data lives in an embedded YAML asset so it can be tuned without touching
// matching or scoring code, and a file override can replace it per run.
package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/lexicon.yaml
var embeddedLexicon []byte

// Pair is a banned (last, first) combination, compared case-insensitively.
type Pair struct {
	Last  string `yaml:"last"`
	First string `yaml:"first"`
}

// Lexicon is the parsed, read-only pattern configuration. It is shared across
// all folder tasks and never mutated after load.
type Lexicon struct {
	Stopwords          []string `yaml:"stopwords"`
	BannedPairs        []Pair   `yaml:"banned_pairs"`
	ShortAllow         []string `yaml:"short_allow"`
	SuffixAllow        []string `yaml:"suffix_allow"`
	LabelTails         []string `yaml:"label_tails"`
	ContextReject      []string `yaml:"context_reject"`
	FilenameNoise      []string `yaml:"filename_noise"`
	DeclaredStopLabels []string `yaml:"declared_stop_labels"`

	stopwordSet map[string]bool
	shortSet    map[string]bool
	suffixSet   map[string]bool
	bannedSet   map[Pair]bool
}

var (
	defaultLexicon *Lexicon
	defaultOnce    sync.Once
	defaultErr     error
)

// Default returns the embedded lexicon, parsed once per process.
func Default() (*Lexicon, error) {
	defaultOnce.Do(func() {
		defaultLexicon, defaultErr = parse(embeddedLexicon)
	})
	return defaultLexicon, defaultErr
}

// LoadFile loads a lexicon override from a YAML file.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon file: %w", err)
	}
	lex, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing lexicon file %s: %w", path, err)
	}
	return lex, nil
}

func parse(data []byte) (*Lexicon, error) {
	lex := &Lexicon{}
	if err := yaml.Unmarshal(data, lex); err != nil {
		return nil, fmt.Errorf("error parsing lexicon: %w", err)
	}
	if len(lex.Stopwords) == 0 {
		return nil, fmt.Errorf("lexicon has no stopwords")
	}
	lex.buildSets()
	return lex, nil
}

func (l *Lexicon) buildSets() {
	l.stopwordSet = lowerSet(l.Stopwords)
	l.shortSet = lowerSet(l.ShortAllow)
	l.suffixSet = lowerSet(l.SuffixAllow)

	l.bannedSet = make(map[Pair]bool, len(l.BannedPairs))
	for _, p := range l.BannedPairs {
		l.bannedSet[Pair{Last: strings.ToLower(p.Last), First: strings.ToLower(p.First)}] = true
	}
}

func lowerSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

// IsStopword reports whether a token can never be part of a name.
func (l *Lexicon) IsStopword(token string) bool {
	return l.stopwordSet[strings.ToLower(token)]
}

// IsShortAllowed reports whether a two-letter token is a legitimate surname.
func (l *Lexicon) IsShortAllowed(token string) bool {
	return l.shortSet[strings.ToLower(token)]
}

// IsSuffix reports whether a token is an allowed generational suffix.
func (l *Lexicon) IsSuffix(token string) bool {
	return l.suffixSet[strings.ToLower(token)]
}

// IsBannedPair reports whether a cleaned (last, first) pair is known boilerplate.
func (l *Lexicon) IsBannedPair(last, first string) bool {
	return l.bannedSet[Pair{Last: strings.ToLower(last), First: strings.ToLower(first)}]
}
