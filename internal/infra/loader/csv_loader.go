// Package loader reads exported datasets back from disk.
package loader

import (
	"encoding/csv"
	"io"
	"io/fs"
	"path"
	"slices"

	"rentgen/internal/infra/compress"

	"github.com/pkg/errors"
)

// RowFunc receives one data row with its 1-based line number (the header is line 1).
type RowFunc func(line int, record []string) error

// CSVLoader loads dataset tables from a file system.
type CSVLoader struct {
	fsys fs.FS
}

// NewCSVLoader creates a loader rooted at fsys.
func NewCSVLoader(fsys fs.FS) *CSVLoader {
	return &CSVLoader{fsys: fsys}
}

// LoadTable streams dir/name row by row into fn after checking that the header
// equals columns. Files ending in .lz4 are decompressed. It returns the number
// of data rows read.
func (l *CSVLoader) LoadTable(dir, name string, columns []string, fn RowFunc) (int, error) {
	filePath := path.Join(dir, name)
	file, err := l.fsys.Open(filePath)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", filePath)
	}
	defer file.Close()

	plain, err := compress.NewReader(file, compress.CodecFor(name))
	if err != nil {
		return 0, errors.Wrapf(err, "decode %s", filePath)
	}

	reader := csv.NewReader(plain)
	reader.FieldsPerRecord = len(columns)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return 0, errors.Wrapf(err, "read header of %s", name)
	}
	if !slices.Equal(header, columns) {
		return 0, errors.Errorf("invalid %s header: expected %v, got %v", name, columns, header)
	}

	rows := 0
	lineNum := 1

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return rows, errors.Wrapf(readErr, "read %s", name)
		}
		lineNum++
		rows++

		if err := fn(lineNum, record); err != nil {
			return rows, err
		}
	}

	return rows, nil
}
