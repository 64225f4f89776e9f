// Package tokenizers provides the Thai word Tokenizer: a dictionary, a character cluster ruleset and
// a segmentation engine, plus the post-processing of the engine output.
//
// Example:
//
//	tok, err := tokenizers.New(tokenizers.WithWords("ชินโซ", "อาเบะ"))
//	if err != nil { ... }
//	words := tok.Segment("ชินโซ อาเบะ เกิด 21 กันยายน")
//
// The engines live in their own packages (newmm, longest, multicut) and can be used directly; this
// package wires them with the defaults.
package tokenizers

import (
	"github.com/gomlx/go-thainlp/tokenizers/api"
	"github.com/gomlx/go-thainlp/tokenizers/lattice"
	"github.com/gomlx/go-thainlp/tokenizers/longest"
	"github.com/gomlx/go-thainlp/tokenizers/multicut"
	"github.com/gomlx/go-thainlp/tokenizers/newmm"
	"github.com/gomlx/go-thainlp/tokenizers/postprocess"
	"github.com/gomlx/go-thainlp/tokenizers/tcc"
	"github.com/gomlx/go-thainlp/tokenizers/trie"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Tokenizer segments Thai text into words.
//
// It is immutable after New: segmentation is a pure function of the text and the configuration, and
// a Tokenizer is safe for concurrent use.
type Tokenizer struct {
	engine    api.Engine
	safeMode  bool
	dict      *trie.Trie
	scanner   *tcc.Scanner
	segmenter api.SegmenterWithSpans
	multicut  *multicut.Segmenter
	post      postprocess.Options
}

// Compile time assert that Tokenizer implements api.SegmenterWithSpans interface.
var _ api.SegmenterWithSpans = &Tokenizer{}

// New creates a Tokenizer. Without options it uses the newmm engine, the improved cluster rules,
// the embedded default dictionary, keeps whitespace and joins formatted numbers.
func New(opts ...Option) (*Tokenizer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.engine.IsAEngine() {
		return nil, errors.Errorf("invalid segmentation engine %s, valid values are %q", o.engine, api.EngineStrings())
	}
	if !o.rules.IsARuleset() {
		return nil, errors.Errorf("invalid cluster ruleset %s, valid values are %q", o.rules, tcc.RulesetStrings())
	}
	dict, err := o.buildDictionary()
	if err != nil {
		return nil, err
	}

	t := &Tokenizer{
		engine:  o.engine,
		dict:    dict,
		scanner: tcc.New(o.rules),
		post: postprocess.Options{
			JoinFormattedNumbers: o.joinNumbers,
			DropWhitespace:       !o.keepWhitespace,
		},
	}
	t.multicut = multicut.New(dict, t.scanner, multicut.WithMergeUnknown(o.mergeUnknown))
	switch o.engine {
	case api.EngineNewMM:
		nopts := []newmm.Option{newmm.WithMergeUnknown(o.mergeUnknown)}
		if o.safeMode {
			maxEdges := o.maxEdges
			if maxEdges <= 0 {
				maxEdges = lattice.DefaultMaxEdges
			}
			nopts = append(nopts, newmm.WithMaxEdges(maxEdges))
			t.safeMode = true
		}
		t.segmenter = newmm.New(dict, t.scanner, nopts...)
	case api.EngineLongest:
		t.segmenter = longest.New(dict, t.scanner)
	case api.EngineMultiCut:
		t.segmenter = t.multicut
	}
	klog.V(2).Infof("created tokenizer: engine=%s safe_mode=%v rules=%s words=%d",
		t.engine, t.safeMode, o.rules, dict.Len())
	return t, nil
}

// Engine returns the segmentation engine in use.
func (t *Tokenizer) Engine() api.Engine {
	return t.engine
}

// SafeMode reports whether the newmm work budget is in effect.
func (t *Tokenizer) SafeMode() bool {
	return t.safeMode
}

// Dictionary returns the dictionary trie. It must not be modified.
func (t *Tokenizer) Dictionary() *trie.Trie {
	return t.dict
}

// ClusterRules returns the character cluster ruleset in use.
func (t *Tokenizer) ClusterRules() tcc.Ruleset {
	return t.scanner.Ruleset()
}

// Segment implements api.Segmenter. Empty text returns an empty slice.
func (t *Tokenizer) Segment(text string) []string {
	return api.Strings([]rune(text), t.SegmentSpans(text))
}

// SegmentSpans implements api.SegmenterWithSpans: the spans are rune offsets into text. Without
// whitespace removal the spans are contiguous and cover the whole text.
func (t *Tokenizer) SegmentSpans(text string) []api.TokenSpan {
	if text == "" {
		return []api.TokenSpan{}
	}
	spans := t.segmenter.SegmentSpans(text)
	if !t.post.JoinFormattedNumbers && !t.post.DropWhitespace {
		return spans
	}
	return postprocess.Apply([]rune(text), spans, t.post)
}

// AllSegmentations returns up to limit segmentations of text allowed by the dictionary, whatever the
// engine. Zero or negative limit uses multicut.DefaultLimit. No post-processing is applied.
func (t *Tokenizer) AllSegmentations(text string, limit int) [][]string {
	return t.multicut.AllSegmentations(text, limit)
}
