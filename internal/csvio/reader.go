// Package csvio reads the cleaned input files and writes the final
// dimension/fact tables. Input files come from a legacy cleaning process:
// UTF-8 with or without a BOM, or Latin-1, with the occasional broken row.
package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Warning records a non-fatal issue for one input row.
type Warning struct {
	Row     int
	Message string
}

// File is a parsed tabular input: header columns plus one map per row.
type File struct {
	Columns  []string
	Rows     []map[string]string
	Warnings []Warning
	Encoding string
}

// HasColumn reports whether the file's header contains name.
func (f *File) HasColumn(name string) bool {
	for _, c := range f.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ReadFile loads and parses one CSV file from disk.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Read(data)
}

// Read parses CSV bytes. The encoding is detected per file: a UTF-8 BOM is
// stripped, valid UTF-8 passes through, and anything else is decoded as
// Latin-1. Rows with the wrong column count are padded or truncated, and
// rows the csv parser rejects are skipped; both produce warnings rather
// than aborting the load.
func Read(data []byte) (*File, error) {
	decoded, encoding, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file: no header row")
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	file := &File{Columns: header, Encoding: encoding}
	rowNum := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			file.Warnings = append(file.Warnings, Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("malformed row skipped: %v", err),
			})
			continue
		}

		if len(row) != len(header) {
			if len(row) < len(header) {
				file.Warnings = append(file.Warnings, Warning{
					Row:     rowNum,
					Message: fmt.Sprintf("row has %d columns, expected %d; padded", len(row), len(header)),
				})
				padded := make([]string, len(header))
				copy(padded, row)
				row = padded
			} else {
				file.Warnings = append(file.Warnings, Warning{
					Row:     rowNum,
					Message: fmt.Sprintf("row has %d columns, expected %d; truncated", len(row), len(header)),
				})
				row = row[:len(header)]
			}
		}

		record := make(map[string]string, len(header))
		for i, col := range header {
			record[col] = strings.TrimSpace(row[i])
		}
		file.Rows = append(file.Rows, record)
	}

	return file, nil
}

func decode(data []byte) ([]byte, string, error) {
	if bytes.HasPrefix(data, bomUTF8) {
		return data[len(bomUTF8):], "utf-8-bom", nil
	}
	if utf8.Valid(data) {
		return data, "utf-8", nil
	}
	decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
	if err != nil {
		return nil, "", err
	}
	return decoded, "latin-1", nil
}
