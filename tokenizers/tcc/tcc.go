// Package tcc splits Thai text into Thai Character Clusters (TCC): the smallest orthographically
// indivisible units of the script, such as a consonant with its dependent vowels and tone marks.
//
// A word boundary can only fall on a cluster boundary, so the segmenters use the positions computed
// here to reject dictionary matches that would split a cluster.
//
// Two rulesets are available: RulesLegacy follows Theeramunkong et al. 2000 ("Character cluster based
// Thai information retrieval"), RulesImproved adds karan (์) suffix handling and a few extra clusters.
package tcc

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Ruleset selects the cluster pattern list.
type Ruleset int

const (
	// RulesImproved is the default ruleset used by the word segmenters.
	RulesImproved Ruleset = iota // improved
	// RulesLegacy is the original TCC grammar.
	RulesLegacy // legacy
)

//go:generate enumer -type=Ruleset -linecomment -values -text -json -yaml tcc.go

// ParseRuleset converts a ruleset name ("improved" or "legacy") to a Ruleset.
func ParseRuleset(name string) (Ruleset, error) {
	r, err := RulesetString(strings.TrimSpace(name))
	if err != nil {
		return 0, errors.Wrapf(err, "unknown cluster ruleset %q, valid values are %q", name, RulesetStrings())
	}
	return r, nil
}

// Pattern templates. The letters are expanded by expandRule:
//
//	c: a consonant
//	t: an optional tone mark
//	k: an optional karan suffix (consonants silenced by ์)
//	d: a lower vowel
//	L: the cluster must be followed by a consonant, a leading vowel or the end of text;
//	   the follower is not part of the cluster.
var legacyRules = []string{
	"เc็c",
	"เcctาะ",
	"เccีtยะ",
	"เccีtยL",
	"เcc็c",
	"เcิc์c",
	"เcิtc",
	"เcีtยะ?",
	"เcืtอะ?",
	"เc[ิีุู]tยL",
	"เctา?ะ?",
	"cัtวะ",
	"c[ัื]tc[ุิะ]?",
	"c[ิุู]์",
	"c[ะ-ู]t",
	"c็",
	"ct[ะาำ]?",
	"แc็c",
	"แcc์",
	"แctะ",
	"แcc็c",
	"แccc์",
	"โctะ",
	"[เ-ไ]ct",
}

var improvedRules = []string{
	"เc็ck",
	"เcctาะk",
	"เccีtยะk",
	"เccีtยLk",
	"เcc็ck",
	"เcิc์ck",
	"เcิtck",
	"เcีtยะ?k",
	"เcืtอะ?k",
	"เc[ิีุู]tยLk",
	"เctา?ะ?k",
	"cัtวะk",
	"c[ัื]tc[ุิะ]?k",
	"c[ิุู]์",
	"c[ะ-ู]tk",
	"cรรc์",
	"c็",
	"ct[ะาำ]?k",
	"ck",
	"แc็c",
	"แcc์",
	"แctะ",
	"แcc็c",
	"แccc์",
	"โctะ",
	"[เ-ไ]ct",
	"ก็",
	"อึ",
	"หึ",
}

const (
	karanPattern    = "(?:cc?[dิ]?์)"
	consonantClass  = "[ก-ฮ]"
	toneMarkPattern = "[่-๋]?"
	lowerVowels     = "ูุ"
	followPattern   = "(?:[เ-ไก-ฮ]|$)"
)

// expandRule turns one template into regexp alternatives, each a single capturing group holding the
// cluster, optionally followed by an unconsumed follower. A lookahead followed by an optional karan
// becomes two alternatives: with the karan (which satisfies the lookahead on its own) and without.
func expandRule(template string) []string {
	body, tail, lookahead := strings.Cut(template, "L")
	if !lookahead {
		return []string{"(" + expandClasses(strings.ReplaceAll(template, "k", karanPattern+"?")) + ")"}
	}
	head := expandClasses(body)
	if tail == "k" {
		return []string{
			"(" + head + expandClasses(karanPattern) + ")",
			"(" + head + ")" + followPattern,
		}
	}
	return []string{"(" + head + ")" + followPattern}
}

func expandClasses(s string) string {
	s = strings.ReplaceAll(s, "c", consonantClass)
	s = strings.ReplaceAll(s, "t", toneMarkPattern)
	return strings.ReplaceAll(s, "d", lowerVowels)
}

func compileRules(templates []string) *regexp.Regexp {
	var alternatives []string
	for _, template := range templates {
		alternatives = append(alternatives, expandRule(template)...)
	}
	return regexp.MustCompile("^(?:" + strings.Join(alternatives, "|") + ")")
}

// Scanner splits text into clusters with a compiled ruleset.
// It is immutable and safe for concurrent use.
type Scanner struct {
	ruleset Ruleset
	re      *regexp.Regexp
}

// New compiles the given ruleset. Unknown rulesets fall back to RulesImproved.
func New(ruleset Ruleset) *Scanner {
	templates := improvedRules
	if ruleset == RulesLegacy {
		templates = legacyRules
	} else {
		ruleset = RulesImproved
	}
	return &Scanner{ruleset: ruleset, re: compileRules(templates)}
}

// Ruleset returns the ruleset the scanner was compiled with.
func (s *Scanner) Ruleset() Ruleset {
	return s.ruleset
}

// startsCluster reports whether r can begin a multi-codepoint cluster: a consonant or a leading vowel.
func startsCluster(r rune) bool {
	return r >= 'ก' && r <= 'ไ'
}

// isThai reports whether r is in the Thai block.
func isThai(r rune) bool {
	return r >= 'ก' && r <= '๛'
}

// maxMatchBytes bounds the text matched by the regexp. It is larger than the longest cluster plus its
// follower, so that a "$" follower only matches at the real end of the text.
const maxMatchBytes = 64

// clusterSize returns the byte length of the first cluster of a non-empty text.
func (s *Scanner) clusterSize(text string) int {
	r, size := utf8.DecodeRuneInString(text)
	if !startsCluster(r) {
		return size
	}
	if next, _ := utf8.DecodeRuneInString(text[size:]); !isThai(next) {
		// Every rule continues with Thai runes.
		return size
	}
	if len(text) > maxMatchBytes {
		end := maxMatchBytes
		for end > size && !utf8.RuneStart(text[end]) {
			end--
		}
		text = text[:end]
	}
	loc := s.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return size
	}
	for group := 1; 2*group+1 < len(loc); group++ {
		if loc[2*group] >= 0 {
			if end := loc[2*group+1]; end > 0 {
				return end
			}
			break
		}
	}
	return size
}

// Next returns the first cluster of text and the remaining text.
// It returns empty strings when text is empty.
func (s *Scanner) Next(text string) (cluster, rest string) {
	if text == "" {
		return "", ""
	}
	n := s.clusterSize(text)
	return text[:n], text[n:]
}

// Clusters iterates over the clusters of text.
func (s *Scanner) Clusters(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for text != "" {
			var cluster string
			cluster, text = s.Next(text)
			if !yield(cluster) {
				return
			}
		}
	}
}

// Segment returns the clusters of text.
func (s *Scanner) Segment(text string) []string {
	var clusters []string
	for cluster := range s.Clusters(text) {
		clusters = append(clusters, cluster)
	}
	return clusters
}

// Lengths returns the rune length of each cluster of text.
func (s *Scanner) Lengths(text []rune) []int {
	if len(text) == 0 {
		return nil
	}
	lengths := make([]int, 0, len(text)/2+1)
	for cluster := range s.Clusters(string(text)) {
		lengths = append(lengths, utf8.RuneCountInString(cluster))
	}
	return lengths
}

// Positions returns the cluster boundaries of text, in rune offsets.
func (s *Scanner) Positions(text []rune) Boundaries {
	lengths := s.Lengths(text)
	if len(lengths) == 0 {
		return Boundaries{}
	}
	b := Boundaries{
		ends: make([]int, 0, len(lengths)+1),
		set:  make([]bool, len(text)+1),
	}
	p := 0
	b.ends = append(b.ends, 0)
	b.set[0] = true
	for _, n := range lengths {
		p += n
		b.ends = append(b.ends, p)
		b.set[p] = true
	}
	return b
}
