package trie

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	tr := FromSlice([]string{"ทดสอบ", "สร้าง", "Trie", "ทดสอบ", "", "  ", " ทด "})
	assert.Equal(t, 4, tr.Len())
	assert.True(t, tr.Contains("ทดสอบ"))
	assert.True(t, tr.Contains("ทด"), "surrounding whitespace is trimmed")
	assert.True(t, tr.Contains("Trie"))
	assert.False(t, tr.Contains("ทดส"))
	assert.False(t, tr.Contains(""))
	assert.Equal(t, []string{"Trie", "ทด", "ทดสอบ", "สร้าง"}, slices.Collect(tr.All()))
}

func TestPrefixes(t *testing.T) {
	tr := FromSlice([]string{"ค", "คน", "คนไทย", "ไทย"})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"increasing length", "คนไทยดี", []string{"ค", "คน", "คนไทย"}},
		{"single", "ไทยแลนด์", []string{"ไทย"}},
		{"no match", "ดี", nil},
		{"empty", "", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tr.Prefixes(tc.text))
		})
	}
}

func TestPrefixLengths(t *testing.T) {
	tr := FromSlice([]string{"ค", "คน", "คนไทย", "ไทย"})
	text := []rune("ดีคนไทย")
	assert.Equal(t, []int{1, 2, 5}, tr.PrefixLengths(text, 2, nil))
	assert.Empty(t, tr.PrefixLengths(text, 0, nil))
	assert.Empty(t, tr.PrefixLengths(text, len(text), nil))

	buf := make([]int, 0, 4)
	buf = tr.PrefixLengths(text, 4, buf)
	assert.Equal(t, []int{3}, buf)
}

func TestEmpty(t *testing.T) {
	for name, tr := range map[string]*Trie{
		"nil":      nil,
		"zero":     {},
		"no words": New(nil),
		"empty":    FromSlice(nil),
	} {
		t.Run(name, func(t *testing.T) {
			require.NotPanics(t, func() {
				assert.Equal(t, 0, tr.Len())
				assert.Empty(t, tr.Prefixes("อะไร"))
				assert.Empty(t, tr.PrefixLengths([]rune("อะไร"), 0, nil))
				assert.False(t, tr.Contains("อะไร"))
				assert.Empty(t, slices.Collect(tr.All()))
			})
		})
	}
}
