package corpus

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordList = "# comment\nไทย\n\n  คน  \nภาษา\n"

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	words, err := Read(strings.NewReader(wordList))
	require.NoError(t, err)
	assert.Equal(t, []string{"ไทย", "คน", "ภาษา"}, words)

	words, err = Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoadFile(t *testing.T) {
	words, err := LoadFile(writeFile(t, "words.txt", wordList))
	require.NoError(t, err)
	assert.Equal(t, []string{"ไทย", "คน", "ภาษา"}, words)

	words, err = Load(writeFile(t, "empty.txt", ""))
	require.NoError(t, err)
	assert.Empty(t, words)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoadFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(wordList))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ไทย", "คน", "ภาษา"}, words)

	_, err = LoadFile(writeFile(t, "broken.gz", "not gzip"))
	assert.Error(t, err)
}

type wordRow struct {
	Word string `parquet:"word"`
	Freq int64  `parquet:"freq"`
}

func TestLoadParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.parquet")
	rows := []wordRow{{"ไทย", 10}, {"คน", 7}, {"", 0}, {"ภาษา", 3}}
	require.NoError(t, parquet.WriteFile(path, rows))

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ไทย", "คน", "ภาษา"}, words)

	_, err = LoadParquet(path, "lemma")
	assert.ErrorContains(t, err, `column "lemma" not found`)

	_, err = LoadParquet(writeFile(t, "bad.parquet", "not parquet"), "word")
	assert.Error(t, err)
}

func TestLoadParquetPages(t *testing.T) {
	// Small pages and row groups: words stay valid after their pages are released.
	path := filepath.Join(t.TempDir(), "many.parquet")
	rows := make([]wordRow, 5000)
	want := make([]string, len(rows))
	for i := range rows {
		want[i] = fmt.Sprintf("คำ%04d", i)
		rows[i] = wordRow{Word: want[i], Freq: int64(i)}
	}
	require.NoError(t, parquet.WriteFile(path, rows, parquet.PageBufferSize(512), parquet.MaxRowsPerRowGroup(1000)))

	words, err := LoadParquet(path, DefaultColumn)
	require.NoError(t, err)
	assert.Equal(t, want, words)
}

func TestNormalize(t *testing.T) {
	// "e" followed by a combining acute accent composes to "é".
	words := Normalize([]string{"e\u0301", "\u00e9", " ไทย ", "ไทย", "", "  ", "คน"})
	assert.Equal(t, []string{"\u00e9", "ไทย", "คน"}, words)
	assert.Empty(t, Normalize(nil))
}

func TestDefault(t *testing.T) {
	words := Default()
	assert.Contains(t, words, "ฉัน")
	assert.Contains(t, words, "ภาษาไทย")
	assert.Contains(t, words, "คนไทย")
	assert.Equal(t, len(words), len(Normalize(words)), "no duplicates")
	for _, w := range words {
		assert.False(t, strings.HasPrefix(w, "#"))
	}
	// Each call returns a fresh list.
	words[0] = "changed"
	assert.NotEqual(t, "changed", Default()[0])
}
