// Package api defines the Segmenter API.
// It's just a hack to break the cyclic dependency, and allow the users to import `tokenizers` and get the
// default implementations.
package api

import (
	"strings"

	"github.com/pkg/errors"
)

// TokenSpan represents the span of a token in the original text.
// Start and End are rune offsets (not byte offsets): use []rune(text)[span.Start:span.End] to
// extract the token, or TokenSpan.Text.
type TokenSpan struct {
	Start int // start rune position (inclusive)
	End   int // end rune position (exclusive)
}

// Len returns the number of runes in the span.
func (s TokenSpan) Len() int {
	return s.End - s.Start
}

// Text returns the token text from the runes of the original text.
func (s TokenSpan) Text(text []rune) string {
	return string(text[s.Start:s.End])
}

// Strings converts spans over text to token strings.
func Strings(text []rune, spans []TokenSpan) []string {
	if len(spans) == 0 {
		return []string{}
	}
	tokens := make([]string, len(spans))
	for i, span := range spans {
		tokens[i] = span.Text(text)
	}
	return tokens
}

// Segmenter splits text into word tokens.
//
// It is the only capability downstream features depend on.
type Segmenter interface {
	Segment(text string) []string
}

// SegmenterWithSpans extends Segmenter with span tracking capability.
// This is useful for token classification tasks (NER, tagging) where you need
// to map token predictions back to positions in the original text.
type SegmenterWithSpans interface {
	Segmenter
	// SegmentSpans returns the token spans in the original text, ordered, contiguous and
	// covering the whole text.
	SegmentSpans(text string) []TokenSpan
}

// Engine is the closed set of word segmentation strategies.
type Engine int

const (
	// EngineNewMM is dictionary-based maximal matching constrained by character clusters.
	EngineNewMM Engine = iota // newmm
	// EngineLongest always takes the longest dictionary match.
	EngineLongest // longest
	// EngineMultiCut enumerates the lattice and takes the parse with the fewest tokens.
	EngineMultiCut // mm
)

//go:generate enumer -type=Engine -linecomment -values -text -json -yaml api.go

// EngineSpec is a parsed engine name: "newmm-safe" selects EngineNewMM with safe mode on.
type EngineSpec struct {
	Engine   Engine
	SafeMode bool
}

// engineAliases are the names accepted by ParseEngine on top of the Engine names.
var engineAliases = map[string]EngineSpec{
	"":           {Engine: EngineNewMM},
	"onecut":     {Engine: EngineNewMM},
	"newmm-safe": {Engine: EngineNewMM, SafeMode: true},
	"multi_cut":  {Engine: EngineMultiCut},
	"multicut":   {Engine: EngineMultiCut},
}

// ParseEngine parses an engine name. Accepted names are "newmm", "newmm-safe", "onecut", "longest",
// "mm" and "multi_cut".
func ParseEngine(name string) (EngineSpec, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if spec, found := engineAliases[key]; found {
		return spec, nil
	}
	engine, err := EngineString(key)
	if err != nil {
		return EngineSpec{}, errors.Wrapf(err, "word segmentation engine %q not found", name)
	}
	return EngineSpec{Engine: engine}, nil
}
