package corpus

import (
	"io"

	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
	"golang.org/x/exp/mmap"
	"k8s.io/klog/v2"
)

// LoadParquet reads the words stored in the string column of the Parquet file at path.
// Null values are skipped.
func LoadParquet(path, column string) ([]string, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to mmap word list %s", path)
	}
	defer reader.Close()

	file, err := parquet.OpenFile(reader, int64(reader.Len()))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open parquet word list %s", path)
	}
	leaf, found := file.Schema().Lookup(column)
	if !found {
		return nil, errors.Errorf("column %q not found in parquet word list %s", column, path)
	}

	var words []string
	for _, rowGroup := range file.RowGroups() {
		pages := rowGroup.ColumnChunks()[leaf.ColumnIndex].Pages()
		words, err = readPages(pages, words)
		_ = pages.Close()
		if err != nil {
			return nil, errors.WithMessagef(err, "column %q of parquet word list %s", column, path)
		}
	}
	klog.V(1).Infof("loaded %d words from column %q of %s", len(words), column, path)
	return words, nil
}

func readPages(pages parquet.Pages, words []string) ([]string, error) {
	var values []parquet.Value
	for {
		page, err := pages.ReadPage()
		if err == io.EOF {
			return words, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read page")
		}
		if n := int(page.NumValues()); cap(values) < n {
			values = make([]parquet.Value, n)
		} else {
			values = values[:n]
		}
		n, err := readValues(page.Values(), values)
		if err != nil {
			parquet.Release(page)
			return nil, err
		}
		for _, v := range values[:n] {
			if v.IsNull() {
				continue
			}
			if word := string(v.ByteArray()); word != "" {
				words = append(words, word)
			}
		}
		// Values point into the page buffers: release only after copying them.
		parquet.Release(page)
	}
}

// readValues fills values from r, returning the number read.
func readValues(r parquet.ValueReader, values []parquet.Value) (int, error) {
	n := 0
	for n < len(values) {
		read, err := r.ReadValues(values[n:])
		n += read
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, errors.Wrap(err, "failed to read values")
		}
		if read == 0 {
			break
		}
	}
	return n, nil
}
