// Package postprocess adjusts the token spans produced by a segmenter: it re-joins formatted numbers
// split across tokens and drops whitespace tokens.
//
// All functions take the runes of the original text and spans over it, and return new spans; the
// input slice is not modified.
package postprocess

import (
	"regexp"
	"unicode"

	"github.com/gomlx/go-thainlp/tokenizers/api"
)

// formattedNumber matches digit groups joined by '.', ',' or ':' such as 1,984.42, 127.0.0.1 or 12:00.
var formattedNumber = regexp.MustCompile(`(?:\p{Nd}+[.,:])+\p{Nd}+`)

// Options selects the post-processing steps.
type Options struct {
	// JoinFormattedNumbers merges the tokens of a formatted number into one.
	JoinFormattedNumbers bool

	// DropWhitespace removes tokens made only of whitespace.
	DropWhitespace bool
}

// Apply runs the selected steps. Numbers are joined before whitespace is dropped, so the spans that
// are joined always come from a contiguous cover of the text.
func Apply(text []rune, spans []api.TokenSpan, opts Options) []api.TokenSpan {
	if opts.JoinFormattedNumbers {
		spans = JoinFormattedNumbers(text, spans)
	}
	if opts.DropWhitespace {
		spans = DropWhitespace(text, spans)
	}
	return spans
}

// JoinFormattedNumbers merges the tokens lying completely inside a formatted number, when there are at
// least two of them. A token crossing the start or the end of the number is never merged.
func JoinFormattedNumbers(text []rune, spans []api.TokenSpan) []api.TokenSpan {
	matches := numberMatches(text)
	out := make([]api.TokenSpan, 0, len(spans))
	if len(matches) == 0 {
		return append(out, spans...)
	}
	m := 0
	for i := 0; i < len(spans); {
		span := spans[i]
		for m < len(matches) && matches[m].End <= span.Start {
			m++
		}
		if m == len(matches) || span.Start < matches[m].Start {
			out = append(out, span)
			i++
			continue
		}
		// span starts inside matches[m]: take the tokens that end inside it too.
		j := i
		for j < len(spans) && spans[j].End <= matches[m].End {
			j++
		}
		if j-i >= 2 {
			out = append(out, api.TokenSpan{Start: span.Start, End: spans[j-1].End})
			i = j
			continue
		}
		out = append(out, span)
		i++
	}
	return out
}

// numberMatches returns the rune spans of the formatted numbers of text.
func numberMatches(text []rune) []api.TokenSpan {
	s := string(text)
	locs := formattedNumber.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return nil
	}
	matches := make([]api.TokenSpan, len(locs))
	// Convert byte offsets to rune offsets in a single pass.
	runeIdx, byteIdx := 0, 0
	for i, loc := range locs {
		for byteIdx < loc[0] {
			byteIdx += len(string(text[runeIdx]))
			runeIdx++
		}
		start := runeIdx
		for byteIdx < loc[1] {
			byteIdx += len(string(text[runeIdx]))
			runeIdx++
		}
		matches[i] = api.TokenSpan{Start: start, End: runeIdx}
	}
	return matches
}

// DropWhitespace removes the tokens made only of whitespace.
func DropWhitespace(text []rune, spans []api.TokenSpan) []api.TokenSpan {
	out := make([]api.TokenSpan, 0, len(spans))
	for _, span := range spans {
		if !isSpace(text[span.Start:span.End]) {
			out = append(out, span)
		}
	}
	return out
}

func isSpace(token []rune) bool {
	for _, r := range token {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
