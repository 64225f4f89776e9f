// Package corpus loads word lists used as segmentation dictionaries.
//
// Word lists are plain text files with one word per line (optionally gzip compressed), or Parquet
// files with a string column of words, as published by dataset hubs. Lines starting with '#' and
// blank lines are ignored.
//
// Loaded words are not normalized: use Normalize to apply Unicode NFC so that dictionary entries
// match NFC text.
package corpus

import (
	"bufio"
	"compress/gzip"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/mmap"
	"golang.org/x/text/unicode/norm"
	"k8s.io/klog/v2"
)

// DefaultColumn is the Parquet column read by Load for Parquet files.
const DefaultColumn = "word"

// Load reads the word list at path, choosing the format by extension: ".parquet" files are read with
// LoadParquet and DefaultColumn, anything else with LoadFile.
func Load(path string) ([]string, error) {
	if IsParquet(path) {
		return LoadParquet(path, DefaultColumn)
	}
	return LoadFile(path)
}

// IsParquet reports whether path names a Parquet file, by extension.
func IsParquet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".parquet")
}

// LoadFile reads a text word list, one word per line. Files ending in ".gz" are decompressed.
func LoadFile(path string) ([]string, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to mmap word list %s", path)
	}
	defer reader.Close()

	var r io.Reader = io.NewSectionReader(reader, 0, int64(reader.Len()))
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decompress word list %s", path)
		}
		defer gz.Close()
		r = gz
	}
	words, err := Read(r)
	if err != nil {
		return nil, errors.WithMessagef(err, "word list %s", path)
	}
	klog.V(1).Infof("loaded %d words from %s", len(words), path)
	return words, nil
}

// Read reads a word list from r, one word per line. Surrounding whitespace is trimmed, and blank
// lines and lines starting with '#' are skipped.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read word list")
	}
	return words, nil
}

// Normalize returns the words in Unicode NFC, trimmed, without empty entries or duplicates.
// The first occurrence order is kept.
func Normalize(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.TrimSpace(norm.NFC.String(word))
		if word == "" {
			continue
		}
		if _, found := seen[word]; found {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}
