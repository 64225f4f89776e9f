// Package longest implements greedy longest-matching word segmentation.
//
// At each offset the longest dictionary word is taken, unless it would leave the following text
// without any word to start with, in which case the longest word that does is preferred. Words
// followed by a repetition mark (ๆ) or an abbreviation mark (ฯ) absorb it. Consecutive clusters not
// covered by the dictionary are merged into a single unknown token.
package longest

import (
	"github.com/gomlx/go-thainlp/tokenizers/api"
	"github.com/gomlx/go-thainlp/tokenizers/lattice"
	"github.com/gomlx/go-thainlp/tokenizers/tcc"
	"github.com/gomlx/go-thainlp/tokenizers/trie"
)

// Segmenter segments text by longest matching. It is safe for concurrent use.
type Segmenter struct {
	dict    *trie.Trie
	scanner *tcc.Scanner
}

// Compile time assert that Segmenter implements api.SegmenterWithSpans interface.
var _ api.SegmenterWithSpans = &Segmenter{}

// New creates a Segmenter. A nil scanner uses the improved cluster rules; a nil dictionary is empty.
func New(dict *trie.Trie, scanner *tcc.Scanner) *Segmenter {
	if scanner == nil {
		scanner = tcc.New(tcc.RulesImproved)
	}
	return &Segmenter{dict: dict, scanner: scanner}
}

// Segment implements api.Segmenter.
func (s *Segmenter) Segment(text string) []string {
	runes := []rune(text)
	return api.Strings(runes, s.segment(runes))
}

// SegmentSpans implements api.SegmenterWithSpans.
func (s *Segmenter) SegmentSpans(text string) []api.TokenSpan {
	return s.segment([]rune(text))
}

func (s *Segmenter) segment(text []rune) []api.TokenSpan {
	spans := []api.TokenSpan{}
	if len(text) == 0 {
		return spans
	}
	lat := lattice.New(text, s.dict, s.scanner.Positions(text))
	n := len(text)
	var buf []int
	unknown := false // whether the last span is an unknown token
	for p := 0; p < n; {
		if e := lat.Transparent(p); e > p {
			spans = append(spans, api.TokenSpan{Start: p, End: e})
			unknown = false
			p = e
			continue
		}

		buf = lat.Edges(p, buf[:0])
		if len(buf) == 0 {
			e := lat.Fallback(p)
			if unknown {
				spans[len(spans)-1].End = e
			} else {
				spans = append(spans, api.TokenSpan{Start: p, End: e})
			}
			unknown = true
			p = e
			continue
		}

		e := buf[len(buf)-1]
		for i := len(buf) - 1; i >= 0; i-- {
			if nextWordValid(lat, buf[i]) {
				e = buf[i]
				break
			}
		}
		if e < n && isEndingMark(text[e]) {
			e++
		}
		spans = append(spans, api.TokenSpan{Start: p, End: e})
		unknown = false
		p = e
	}
	return spans
}

// nextWordValid reports whether the text after p, skipping spaces, is empty or starts with a
// dictionary word or a non-Thai run.
func nextWordValid(lat *lattice.Lattice, p int) bool {
	text := lat.Text()
	for p < len(text) && (text[p] == ' ' || text[p] == '\t') {
		p++
	}
	if p == len(text) || lat.Transparent(p) > p {
		return true
	}
	var buf [8]int
	return len(lat.Edges(p, buf[:0])) > 0
}

func isEndingMark(r rune) bool {
	return r == 'ๆ' || r == 'ฯ'
}
