// Package multicut enumerates the segmentations of a text allowed by the dictionary.
//
// The text is cut at the synchronization points of the lattice (see lattice.Scan); each chunk
// carries every parse of its span, and the segmentations of the whole text are the combinations of
// the chunk parses.
package multicut

import (
	"github.com/gomlx/go-thainlp/tokenizers/api"
	"github.com/gomlx/go-thainlp/tokenizers/lattice"
	"github.com/gomlx/go-thainlp/tokenizers/tcc"
	"github.com/gomlx/go-thainlp/tokenizers/trie"
)

// DefaultLimit caps the number of parses per chunk and of segmentations returned by
// AllSegmentations when no explicit limit is given.
const DefaultLimit = 1000

// Chunk is a span of the text with all its parses.
type Chunk struct {
	Start, End int

	// Unknown is set when no dictionary word starts the chunk: its only parse is one token.
	Unknown bool

	// Parses holds the token spans of each parse, in lexicographic order of token ends.
	Parses [][]api.TokenSpan
}

// Segmenter enumerates segmentations with a fixed dictionary and cluster scanner.
// It is safe for concurrent use.
type Segmenter struct {
	dict    *trie.Trie
	scanner *tcc.Scanner
	opts    lattice.ScanOptions
	limit   int
}

// Compile time assert that Segmenter implements api.SegmenterWithSpans interface.
var _ api.SegmenterWithSpans = &Segmenter{}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithMergeUnknown makes unknown chunks extend up to the next offset where a dictionary word or
// non-Thai run starts.
func WithMergeUnknown(enabled bool) Option {
	return func(s *Segmenter) {
		s.opts.MergeUnknown = enabled
	}
}

// WithParseLimit caps the number of parses enumerated per chunk. Zero or negative uses DefaultLimit.
func WithParseLimit(limit int) Option {
	return func(s *Segmenter) {
		s.limit = limit
	}
}

// New creates a Segmenter. A nil scanner uses the improved cluster rules; a nil dictionary is empty.
func New(dict *trie.Trie, scanner *tcc.Scanner, opts ...Option) *Segmenter {
	if scanner == nil {
		scanner = tcc.New(tcc.RulesImproved)
	}
	s := &Segmenter{dict: dict, scanner: scanner}
	for _, opt := range opts {
		opt(s)
	}
	if s.limit <= 0 {
		s.limit = DefaultLimit
	}
	return s
}

// Chunks returns the chunks of text with their parses. Spans are rune offsets into text.
func (s *Segmenter) Chunks(text string) []Chunk {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	lat := lattice.New(runes, s.dict, s.scanner.Positions(runes))
	var chunks []Chunk
	lattice.Scan(lat, s.opts, func(c lattice.Chunk) {
		chunk := Chunk{Start: c.Start, End: c.End, Unknown: c.Unknown}
		if c.Unknown {
			chunk.Parses = [][]api.TokenSpan{{{Start: c.Start, End: c.End}}}
		} else {
			chunk.Parses = parses(c, s.limit)
		}
		chunks = append(chunks, chunk)
	})
	return chunks
}

// parses enumerates the paths from c.Start to c.End, depth first with the shortest token tried
// first, stopping after limit paths.
func parses(c lattice.Chunk, limit int) [][]api.TokenSpan {
	type frame struct {
		p, next int // offset and index of the next edge to try
	}
	var out [][]api.TokenSpan
	var path []api.TokenSpan
	stack := []frame{{p: c.Start}}
	for len(stack) > 0 && len(out) < limit {
		top := &stack[len(stack)-1]
		edges := c.Edges(top.p)
		switch {
		case top.p == c.End:
			out = append(out, append([]api.TokenSpan(nil), path...))
		case top.next < len(edges):
			e := edges[top.next]
			top.next++
			path = append(path, api.TokenSpan{Start: top.p, End: e})
			stack = append(stack, frame{p: e})
			continue
		}
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			path = path[:len(stack)-1]
		}
	}
	if len(out) == 0 {
		out = append(out, []api.TokenSpan{{Start: c.Start, End: c.End}})
	}
	return out
}

// AllSegmentations returns up to limit segmentations of text, each the concatenation of one parse per
// chunk. Segmentations are ordered with the first chunk varying slowest. Zero or negative limit uses
// DefaultLimit.
func (s *Segmenter) AllSegmentations(text string, limit int) [][]string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	chunks := s.Chunks(text)
	if len(chunks) == 0 {
		return [][]string{}
	}
	runes := []rune(text)
	var out [][]string
	choice := make([]int, len(chunks))
	for len(out) < limit {
		var tokens []string
		for i, c := range chunks {
			tokens = append(tokens, api.Strings(runes, c.Parses[choice[i]])...)
		}
		out = append(out, tokens)

		// Advance the last chunk first.
		i := len(chunks) - 1
		for ; i >= 0; i-- {
			choice[i]++
			if choice[i] < len(chunks[i].Parses) {
				break
			}
			choice[i] = 0
		}
		if i < 0 {
			break
		}
	}
	return out
}

// MinCut returns, for each chunk, the parse with the fewest tokens. Among those, the first in
// enumeration order is chosen: the one whose first token is the shortest, then the second, and so on.
func (s *Segmenter) MinCut(text string) []api.TokenSpan {
	runes := []rune(text)
	if len(runes) == 0 {
		return []api.TokenSpan{}
	}
	lat := lattice.New(runes, s.dict, s.scanner.Positions(runes))
	spans := make([]api.TokenSpan, 0, len(runes)/3+1)
	best := make([]int, len(runes)+1)
	next := make([]int, len(runes)+1)
	lattice.Scan(lat, s.opts, func(c lattice.Chunk) {
		if c.Unknown {
			spans = append(spans, api.TokenSpan{Start: c.Start, End: c.End})
			return
		}
		best[c.End] = 0
		for p := c.End - 1; p >= c.Start; p-- {
			best[p], next[p] = -1, -1
			for _, e := range c.Edges(p) {
				// Edges are increasing: a strict comparison keeps the shortest token.
				if best[e] >= 0 && (best[p] < 0 || best[e]+1 < best[p]) {
					best[p], next[p] = best[e]+1, e
				}
			}
		}
		if best[c.Start] < 0 {
			spans = append(spans, api.TokenSpan{Start: c.Start, End: c.End})
			return
		}
		for p := c.Start; p < c.End; p = next[p] {
			spans = append(spans, api.TokenSpan{Start: p, End: next[p]})
		}
	})
	return spans
}

// Segment implements api.Segmenter with MinCut.
func (s *Segmenter) Segment(text string) []string {
	return api.Strings([]rune(text), s.MinCut(text))
}

// SegmentSpans implements api.SegmenterWithSpans with MinCut.
func (s *Segmenter) SegmentSpans(text string) []api.TokenSpan {
	return s.MinCut(text)
}
