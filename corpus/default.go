package corpus

import (
	_ "embed"
	"strings"
)

//go:embed words_th.txt
var defaultWords string

// Default returns the embedded starter word list, normalized. The list is parsed on each call; callers
// keep the result (typically in a trie) for as long as they need it.
func Default() []string {
	words, err := Read(strings.NewReader(defaultWords))
	if err != nil {
		// Reading from a string only fails on lines longer than the scanner buffer.
		panic(err)
	}
	return Normalize(words)
}
