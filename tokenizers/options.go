package tokenizers

import (
	"iter"
	"slices"

	"github.com/gomlx/go-thainlp/corpus"
	"github.com/gomlx/go-thainlp/tokenizers/api"
	"github.com/gomlx/go-thainlp/tokenizers/tcc"
	"github.com/gomlx/go-thainlp/tokenizers/trie"
	"github.com/pkg/errors"
)

// ErrInvalidDictionarySource is returned by New when WithDictionary is given a value that is not a
// path, a word list or a trie.
var ErrInvalidDictionarySource = errors.New("invalid dictionary source")

// Option configures a Tokenizer in New.
type Option func(*options)

type options struct {
	source         any // nil selects corpus.Default
	extraWords     []string
	engine         api.Engine
	safeMode       bool
	maxEdges       int
	rules          tcc.Ruleset
	keepWhitespace bool
	joinNumbers    bool
	mergeUnknown   bool
	parquetColumn  string
}

func defaultOptions() options {
	return options{
		engine:         api.EngineNewMM,
		rules:          tcc.RulesImproved,
		keepWhitespace: true,
		joinNumbers:    true,
		parquetColumn:  corpus.DefaultColumn,
	}
}

// WithDictionary sets the dictionary. The source can be:
//
//   - string: path to a word list, loaded with corpus.Load and normalized to NFC.
//   - []string: the words.
//   - iter.Seq[string]: the words.
//   - *trie.Trie: a prebuilt trie, used as is.
//
// Any other value makes New fail with ErrInvalidDictionarySource.
func WithDictionary(source any) Option {
	return func(o *options) {
		o.source = source
		if o.source == nil {
			// Distinguish an explicit nil from the default dictionary.
			o.source = invalidSource{}
		}
	}
}

type invalidSource struct{}

// WithWords adds words to the dictionary (the default one if WithDictionary is not used).
func WithWords(words ...string) Option {
	return func(o *options) {
		o.extraWords = append(o.extraWords, words...)
	}
}

// WithTrie sets a prebuilt dictionary trie. It is the same as WithDictionary(dict).
func WithTrie(dict *trie.Trie) Option {
	return WithDictionary(dict)
}

// WithParquetColumn sets the column read from Parquet dictionary files. Default is
// corpus.DefaultColumn.
func WithParquetColumn(column string) Option {
	return func(o *options) {
		o.parquetColumn = column
	}
}

// WithEngine selects the segmentation engine. Default is api.EngineNewMM.
func WithEngine(engine api.Engine) Option {
	return func(o *options) {
		o.engine = engine
	}
}

// WithSafeMode bounds the work of the newmm engine on long ambiguous spans. Other engines ignore it.
func WithSafeMode(enabled bool) Option {
	return func(o *options) {
		o.safeMode = enabled
	}
}

// WithMaxEdges sets the safe mode budget of the newmm engine and enables safe mode when positive.
func WithMaxEdges(maxEdges int) Option {
	return func(o *options) {
		o.maxEdges = maxEdges
		if maxEdges > 0 {
			o.safeMode = true
		}
	}
}

// WithClusterRules selects the character cluster ruleset. Default is tcc.RulesImproved.
func WithClusterRules(rules tcc.Ruleset) Option {
	return func(o *options) {
		o.rules = rules
	}
}

// WithKeepWhitespace controls whether whitespace tokens are returned. Default is true.
func WithKeepWhitespace(keep bool) Option {
	return func(o *options) {
		o.keepWhitespace = keep
	}
}

// WithJoinFormattedNumbers controls whether numbers like 1,984.42 or 12:00 split across tokens are
// joined into one. Default is true.
func WithJoinFormattedNumbers(join bool) Option {
	return func(o *options) {
		o.joinNumbers = join
	}
}

// WithMergeUnknown makes unknown text extend to the next offset where a dictionary word starts,
// instead of one token per character cluster.
func WithMergeUnknown(merge bool) Option {
	return func(o *options) {
		o.mergeUnknown = merge
	}
}

// buildDictionary resolves the dictionary source and the extra words into a trie.
func (o *options) buildDictionary() (*trie.Trie, error) {
	var words iter.Seq[string]
	switch source := o.source.(type) {
	case nil:
		words = slices.Values(corpus.Default())
	case string:
		var loaded []string
		var err error
		if corpus.IsParquet(source) {
			loaded, err = corpus.LoadParquet(source, o.parquetColumn)
		} else {
			loaded, err = corpus.LoadFile(source)
		}
		if err != nil {
			return nil, errors.WithMessage(err, "failed to load dictionary")
		}
		words = slices.Values(corpus.Normalize(loaded))
	case []string:
		words = slices.Values(source)
	case iter.Seq[string]:
		words = source
	case func(yield func(string) bool):
		words = source
	case *trie.Trie:
		if len(o.extraWords) == 0 {
			return source, nil
		}
		words = source.All()
	default:
		if _, ok := source.(invalidSource); ok {
			return nil, errors.Wrap(ErrInvalidDictionarySource, "nil dictionary source")
		}
		return nil, errors.Wrapf(ErrInvalidDictionarySource, "unsupported dictionary source type %T", source)
	}
	if len(o.extraWords) > 0 {
		words = concat(words, slices.Values(o.extraWords))
	}
	return trie.New(words), nil
}

func concat(seqs ...iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, seq := range seqs {
			for s := range seq {
				if !yield(s) {
					return
				}
			}
		}
	}
}
