package multicut

import (
	"strings"
	"testing"

	"github.com/gomlx/go-thainlp/tokenizers/api"
	"github.com/gomlx/go-thainlp/tokenizers/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newSegmenter(words []string, opts ...Option) *Segmenter {
	return New(trie.FromSlice(words), nil, opts...)
}

func TestChunks(t *testing.T) {
	s := newSegmenter([]string{"ตา", "ตาก", "กลม", "ลม", "ดี"})
	chunks := s.Chunks("ตากลมดี")
	require.Len(t, chunks, 2)
	assert.Equal(t, Chunk{
		Start: 0, End: 5,
		Parses: [][]api.TokenSpan{
			{{Start: 0, End: 2}, {Start: 2, End: 5}},
			{{Start: 0, End: 3}, {Start: 3, End: 5}},
		},
	}, chunks[0])
	assert.Equal(t, Chunk{Start: 5, End: 7, Parses: [][]api.TokenSpan{{{Start: 5, End: 7}}}}, chunks[1])

	assert.Nil(t, s.Chunks(""))
}

func TestChunksUnknown(t *testing.T) {
	s := newSegmenter([]string{"ข"})
	chunks := s.Chunks("กขABC")
	require.Len(t, chunks, 3)
	assert.True(t, chunks[0].Unknown)
	assert.False(t, chunks[1].Unknown)
	assert.True(t, chunks[2].Unknown)
	assert.Equal(t, [][]api.TokenSpan{{{Start: 2, End: 5}}}, chunks[2].Parses)
}

func TestAllSegmentations(t *testing.T) {
	s := newSegmenter([]string{"ตา", "ตาก", "กลม", "ลม", "ดี"})
	assert.Equal(t, [][]string{
		{"ตา", "กลม", "ดี"},
		{"ตาก", "ลม", "ดี"},
	}, s.AllSegmentations("ตากลมดี", 0))
	assert.Equal(t, [][]string{{"ตา", "กลม", "ดี"}}, s.AllSegmentations("ตากลมดี", 1))
	assert.Equal(t, [][]string{}, s.AllSegmentations("", 10))

	// Two ambiguous chunks: the first varies slowest.
	s = newSegmenter([]string{"ตา", "ตาก", "กลม", "ลม", " "})
	assert.Equal(t, [][]string{
		{"ตา", "กลม", " ", "ตา", "กลม"},
		{"ตา", "กลม", " ", "ตาก", "ลม"},
		{"ตาก", "ลม", " ", "ตา", "กลม"},
		{"ตาก", "ลม", " ", "ตาก", "ลม"},
	}, s.AllSegmentations("ตากลม ตากลม", 0))
}

func TestParseLimit(t *testing.T) {
	words := []string{"ก", "ข", "กข", "ขก"}
	s := newSegmenter(words)
	chunks := s.Chunks("กขกข")
	require.Len(t, chunks, 1)
	require.Len(t, chunks[0].Parses, 5)
	assert.Equal(t, []api.TokenSpan{{Start: 0, End: 1}, {Start: 1, End: 2}, {Start: 2, End: 3}, {Start: 3, End: 4}}, chunks[0].Parses[0])
	assert.Len(t, s.AllSegmentations("กขกข", 0), 5)

	s = newSegmenter(words, WithParseLimit(3))
	chunks = s.Chunks(strings.Repeat("กข", 10))
	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0].Parses, 3)
}

func TestMinCut(t *testing.T) {
	s := newSegmenter([]string{"ตา", "ตาก", "กลม", "ลม"})
	// Both parses have two tokens: the first enumerated wins.
	assert.Equal(t, []string{"ตา", "กลม"}, s.Segment("ตากลม"))

	s = newSegmenter([]string{"ฉัน", "รัก", "ภาษา", "ไทย", "ภาษาไทย"})
	assert.Equal(t, []string{"ฉัน", "รัก", "ภาษาไทย"}, s.Segment("ฉันรักภาษาไทย"))
	assert.Equal(t, []api.TokenSpan{}, s.SegmentSpans(""))
}

func TestProperty_MinCutIsShortestParse(t *testing.T) {
	words := []string{"ก", "ข", "กข", "ขก", "กขก"}
	s := newSegmenter(words)
	rapid.Check(t, func(rt *rapid.T) {
		runes := rapid.SliceOfN(rapid.SampledFrom([]rune("กข")), 1, 12).Draw(rt, "runes")
		text := string(runes)
		minCut := s.Segment(text)
		require.Equal(rt, text, strings.Join(minCut, ""))
		for _, seg := range s.AllSegmentations(text, 0) {
			require.Equal(rt, text, strings.Join(seg, ""))
			require.LessOrEqual(rt, len(minCut), len(seg))
		}
	})
}
