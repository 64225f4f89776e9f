// Package trie implements the dictionary store used by the word segmenters: a prefix tree over runes
// that answers "which dictionary words start here" in time proportional to the longest match.
//
// A Trie is built once and never mutated afterwards, so it can be shared by any number of
// tokenizers and goroutines.
package trie

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

// node is one trie node. Children are keyed by rune.
type node struct {
	end      bool
	children map[rune]*node
}

// Trie is an immutable set of words with prefix lookup.
//
// The zero value and a nil *Trie are valid empty dictionaries.
type Trie struct {
	root  node
	size  int
	words []string // sorted, used by All
}

// New builds a Trie from the given words.
// Surrounding whitespace is trimmed, empty words are ignored and duplicates are no-ops.
func New(words iter.Seq[string]) *Trie {
	t := &Trie{}
	if words == nil {
		return t
	}
	for word := range words {
		t.add(word)
	}
	slices.Sort(t.words)
	return t
}

// FromSlice builds a Trie from a slice of words, see New.
func FromSlice(words []string) *Trie {
	return New(slices.Values(words))
}

func (t *Trie) add(word string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}
	cur := &t.root
	for _, r := range word {
		child := cur.children[r]
		if child == nil {
			if cur.children == nil {
				cur.children = make(map[rune]*node)
			}
			child = &node{}
			cur.children[r] = child
		}
		cur = child
	}
	if cur.end {
		return
	}
	cur.end = true
	t.size++
	t.words = append(t.words, word)
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Contains reports whether word is in the dictionary.
func (t *Trie) Contains(word string) bool {
	if t == nil || word == "" {
		return false
	}
	cur := &t.root
	for _, r := range word {
		cur = cur.children[r]
		if cur == nil {
			return false
		}
	}
	return cur.end
}

// Prefixes returns every prefix of text that is a dictionary word, shortest first.
func (t *Trie) Prefixes(text string) []string {
	if t == nil {
		return nil
	}
	var res []string
	cur := &t.root
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		cur = cur.children[r]
		if cur == nil {
			break
		}
		if cur.end {
			res = append(res, text[:i])
		}
	}
	return res
}

// PrefixLengths appends to dst the rune lengths of all dictionary words that are prefixes of
// text[start:], in increasing order, and returns the extended slice.
func (t *Trie) PrefixLengths(text []rune, start int, dst []int) []int {
	if t == nil || start < 0 {
		return dst
	}
	cur := &t.root
	for i := start; i < len(text); i++ {
		cur = cur.children[text[i]]
		if cur == nil {
			break
		}
		if cur.end {
			dst = append(dst, i+1-start)
		}
	}
	return dst
}

// All iterates over the words in lexicographic order.
func (t *Trie) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if t == nil {
			return
		}
		for _, w := range t.words {
			if !yield(w) {
				return
			}
		}
	}
}
