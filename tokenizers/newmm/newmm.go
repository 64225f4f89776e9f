// Package newmm implements dictionary-based maximal matching constrained by Thai character clusters.
//
// The text is scanned left to right over the lattice of dictionary words whose boundaries are cluster
// boundaries (see package lattice). Each span between two synchronization points is resolved
// independently: the parse with the fewest tokens wins, and among those the one whose first token is
// the longest, then the second, and so on.
//
// Offsets where no dictionary word starts produce an unknown token: one character cluster, a run of
// non-Thai material, or (with WithMergeUnknown) a run up to the next offset where a word starts.
package newmm

import (
	"github.com/gomlx/go-thainlp/tokenizers/api"
	"github.com/gomlx/go-thainlp/tokenizers/lattice"
	"github.com/gomlx/go-thainlp/tokenizers/tcc"
	"github.com/gomlx/go-thainlp/tokenizers/trie"
)

// Segmenter segments text with a fixed dictionary and cluster scanner.
//
// It is immutable after New and safe for concurrent use.
type Segmenter struct {
	dict    *trie.Trie
	scanner *tcc.Scanner
	opts    lattice.ScanOptions
}

// Compile time assert that Segmenter implements api.SegmenterWithSpans interface.
var _ api.SegmenterWithSpans = &Segmenter{}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithSafeMode bounds the work spent on long ambiguous spans, using lattice.DefaultMaxEdges as the
// budget. The result may differ from the unbounded one on such spans.
func WithSafeMode(enabled bool) Option {
	return func(s *Segmenter) {
		if enabled {
			if s.opts.MaxEdges <= 0 {
				s.opts.MaxEdges = lattice.DefaultMaxEdges
			}
		} else {
			s.opts.MaxEdges = 0
		}
	}
}

// WithMaxEdges sets the safe mode budget: the number of edges a span may hold before a cut is
// forced. Zero or negative disables safe mode.
func WithMaxEdges(maxEdges int) Option {
	return func(s *Segmenter) {
		s.opts.MaxEdges = max(maxEdges, 0)
	}
}

// WithMergeUnknown makes unknown tokens extend up to the next offset where a dictionary word or
// non-Thai run starts, instead of covering a single cluster.
func WithMergeUnknown(enabled bool) Option {
	return func(s *Segmenter) {
		s.opts.MergeUnknown = enabled
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
	return s
}

// SafeMode reports whether a work budget is in effect.
func (s *Segmenter) SafeMode() bool {
	return s.opts.MaxEdges > 0
}

// Segment implements api.Segmenter.
func (s *Segmenter) Segment(text string) []string {
	runes := []rune(text)
	spans, _ := s.segment(runes)
	return api.Strings(runes, spans)
}

// SegmentSpans implements api.SegmenterWithSpans.
func (s *Segmenter) SegmentSpans(text string) []api.TokenSpan {
	spans, _ := s.segment([]rune(text))
	return spans
}

// SegmentStats is SegmentSpans also returning the work done by the lattice scan.
func (s *Segmenter) SegmentStats(text string) ([]api.TokenSpan, lattice.Stats) {
	return s.segment([]rune(text))
}

// SegmentRunes segments text given as runes; the spans index into text.
func (s *Segmenter) SegmentRunes(text []rune) []api.TokenSpan {
	spans, _ := s.segment(text)
	return spans
}

func (s *Segmenter) segment(text []rune) ([]api.TokenSpan, lattice.Stats) {
	if len(text) == 0 {
		return []api.TokenSpan{}, lattice.Stats{}
	}
	lat := lattice.New(text, s.dict, s.scanner.Positions(text))
	spans := make([]api.TokenSpan, 0, len(text)/3+1)
	r := newResolver(len(text))
	stats := lattice.Scan(lat, s.opts, func(c lattice.Chunk) {
		if c.Unknown {
			spans = append(spans, api.TokenSpan{Start: c.Start, End: c.End})
			return
		}
		spans = r.resolve(c, spans)
	})
	return spans, stats
}

// resolver holds the dynamic programming tables, reused across the chunks of one call.
type resolver struct {
	best []int // fewest tokens from an offset to the chunk end, -1 if the end is unreachable
	next []int // end of the first token of the chosen parse from an offset
}

func newResolver(n int) *resolver {
	return &resolver{best: make([]int, n+1), next: make([]int, n+1)}
}

// resolve appends the spans of the best parse of chunk c.
//
// The table is filled from the chunk end backwards: best[p] = 1 + min best[e] over the edges (p, e).
// Among equally short parses the largest e is kept, which makes the forward walk leftmost-longest.
func (r *resolver) resolve(c lattice.Chunk, spans []api.TokenSpan) []api.TokenSpan {
	best, next := r.best, r.next
	best[c.End] = 0
	for p := c.End - 1; p >= c.Start; p-- {
		best[p], next[p] = -1, -1
		for _, e := range c.Edges(p) {
			if best[e] < 0 {
				continue
			}
			if d := best[e] + 1; best[p] < 0 || d < best[p] || (d == best[p] && e > next[p]) {
				best[p], next[p] = d, e
			}
		}
	}
	if best[c.Start] < 0 {
		// A chunk always has a parse; keep the coverage if the lattice says otherwise.
		return append(spans, api.TokenSpan{Start: c.Start, End: c.End})
	}
	for p := c.Start; p < c.End; p = next[p] {
		spans = append(spans, api.TokenSpan{Start: p, End: next[p]})
	}
	return spans
}
