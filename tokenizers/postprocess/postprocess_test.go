package postprocess

import (
	"testing"

	"github.com/gomlx/go-thainlp/tokenizers/api"
	"github.com/stretchr/testify/assert"
)

// split builds the spans of consecutive tokens and returns the joined text with them.
func split(tokens ...string) ([]rune, []api.TokenSpan) {
	var text []rune
	spans := make([]api.TokenSpan, 0, len(tokens))
	for _, tok := range tokens {
		start := len(text)
		text = append(text, []rune(tok)...)
		spans = append(spans, api.TokenSpan{Start: start, End: len(text)})
	}
	return text, spans
}

func TestJoinFormattedNumbers(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{"decimal", []string{"19", ".", "84"}, []string{"19.84"}},
		{"ip address", []string{"127", ".", "0", ".", "0", ".", "1"}, []string{"127.0.0.1"}},
		{"currency", []string{"USD", "1", ",", "984", ".", "42"}, []string{"USD", "1,984.42"}},
		{"time", []string{"12", ":", "00", " ", "น."}, []string{"12:00", " ", "น."}},
		{"thai digits", []string{"๑๒", ".", "๕"}, []string{"๑๒.๕"}},
		{"already joined", []string{"ราคา", "19.84"}, []string{"ราคา", "19.84"}},
		{"crossing start", []string{"ก1", ".", "5"}, []string{"ก1", ".5"}},
		{"crossing end", []string{"1", ".", "5ก"}, []string{"1.", "5ก"}},
		{"no separator", []string{"12", " ", "34"}, []string{"12", " ", "34"}},
		{"trailing separator", []string{"12", "."}, []string{"12", "."}},
		{"two numbers", []string{"1", ".", "5", "-", "2", ":", "30"}, []string{"1.5", "-", "2:30"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, spans := split(tc.tokens...)
			got := JoinFormattedNumbers(text, spans)
			assert.Equal(t, tc.want, api.Strings(text, got))
		})
	}
}

func TestJoinDoesNotModifyInput(t *testing.T) {
	text, spans := split("19", ".", "84")
	orig := append([]api.TokenSpan(nil), spans...)
	JoinFormattedNumbers(text, spans)
	assert.Equal(t, orig, spans)
}

func TestDropWhitespace(t *testing.T) {
	text, spans := split("ไทย", " ", "\n", "คน", "\t ", "ดี")
	assert.Equal(t, []string{"ไทย", "คน", "ดี"}, api.Strings(text, DropWhitespace(text, spans)))

	text, spans = split(" ")
	assert.Empty(t, DropWhitespace(text, spans))
}

func TestApply(t *testing.T) {
	text, spans := split("เวลา", " ", "12", ":", "00", " ", "น.")

	got := Apply(text, spans, Options{JoinFormattedNumbers: true, DropWhitespace: true})
	assert.Equal(t, []string{"เวลา", "12:00", "น."}, api.Strings(text, got))

	got = Apply(text, spans, Options{})
	assert.Equal(t, spans, got)

	got = Apply(text, spans, Options{DropWhitespace: true})
	assert.Equal(t, []string{"เวลา", "12", ":", "00", "น."}, api.Strings(text, got))
}
