// Package lattice builds the implicit graph of admissible tokens over a text and scans it left to
// right, cutting the text at synchronization points where every admissible parse agrees.
//
// An edge (p, e) exists when text[p:e] is a dictionary word and e is a character cluster boundary.
// Edges are computed lazily, only for the offsets the scan reaches.
package lattice

import (
	"unicode"

	"github.com/gomlx/go-thainlp/tokenizers/tcc"
	"github.com/gomlx/go-thainlp/tokenizers/trie"
)

// Lattice answers edge queries for one text. It is created per segmentation call.
type Lattice struct {
	text   []rune
	dict   *trie.Trie
	bounds tcc.Boundaries
}

// New creates the lattice of text, with bounds computed by a tcc.Scanner for the same text.
func New(text []rune, dict *trie.Trie, bounds tcc.Boundaries) *Lattice {
	return &Lattice{text: text, dict: dict, bounds: bounds}
}

// Len returns the text length in runes.
func (l *Lattice) Len() int {
	return len(l.text)
}

// Text returns the runes of the text.
func (l *Lattice) Text() []rune {
	return l.text
}

// Edges appends to dst the ends of all edges starting at p, in increasing order.
func (l *Lattice) Edges(p int, dst []int) []int {
	start := len(dst)
	dst = l.dict.PrefixLengths(l.text, p, dst)
	out := dst[:start]
	for _, n := range dst[start:] {
		if l.bounds.Contains(p + n) {
			out = append(out, p+n)
		}
	}
	return out
}

// Transparent returns the end of the run of non-Thai material starting at p, or p if there is none.
//
// Runs are: letters of other scripts (with '-' and combining marks), a digit followed by digits,
// ',' and '.', spaces and tabs, and a newline ("\n" or "\r\n").
func (l *Lattice) Transparent(p int) int {
	text := l.text
	n := len(text)
	if p < 0 || p >= n {
		return p
	}
	e := p
	switch r := text[p]; {
	case isForeignLetter(r) || r == '-':
		e = p + 1
		for e < n && (isForeignLetter(text[e]) || text[e] == '-' || isForeignMark(text[e])) {
			e++
		}
	case unicode.IsDigit(r):
		e = p + 1
		for e < n && (unicode.IsDigit(text[e]) || text[e] == ',' || text[e] == '.') {
			e++
		}
	case r == ' ' || r == '\t':
		e = p + 1
		for e < n && (text[e] == ' ' || text[e] == '\t') {
			e++
		}
	case r == '\n':
		e = p + 1
	case r == '\r' && p+1 < n && text[p+1] == '\n':
		e = p + 2
	}
	if e > p && !l.bounds.Contains(e) {
		return p
	}
	return e
}

// Fallback returns the end of the token used at p when no edge starts there: a transparent run if
// there is one, otherwise exactly one cluster.
func (l *Lattice) Fallback(p int) int {
	if e := l.Transparent(p); e > p {
		return e
	}
	return l.nextCluster(p)
}

// UnknownRun returns the end of an unknown token starting at p that extends cluster by cluster up to
// the next offset where a transparent run or a dictionary word starts. Words made of at most two bare
// consonants do not stop the run.
func (l *Lattice) UnknownRun(p int) int {
	if e := l.Transparent(p); e > p {
		return e
	}
	n := len(l.text)
	var buf []int
	for i := l.nextCluster(p); i < n; i = l.nextCluster(i) {
		if l.Transparent(i) > i {
			return i
		}
		buf = l.Edges(i, buf[:0])
		for _, e := range buf {
			if !bareConsonants(l.text[i:e]) {
				return i
			}
		}
	}
	return n
}

func (l *Lattice) nextCluster(p int) int {
	if e := l.bounds.Next(p); e > p {
		return e
	}
	return min(p+1, len(l.text))
}

func isThai(r rune) bool {
	return unicode.Is(unicode.Thai, r)
}

func isForeignLetter(r rune) bool {
	return unicode.IsLetter(r) && !isThai(r)
}

func isForeignMark(r rune) bool {
	return unicode.IsMark(r) && !isThai(r)
}

// bareConsonants reports whether word has at most two runes, all Thai consonants.
func bareConsonants(word []rune) bool {
	if len(word) > 2 {
		return false
	}
	for _, r := range word {
		if r < 'ก' || r > 'ฮ' {
			return false
		}
	}
	return true
}
