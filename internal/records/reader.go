// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const utf8BOM = "\ufeff"

// ReadOptions controls how an input file is parsed
type ReadOptions struct {
	// Delimiter separates cells. Zero selects one from the file extension.
	Delimiter rune

	Columns Columns
}

// DelimiterFor returns the default delimiter for a file path: tab for .tsv
// and .tab files, comma otherwise
func DelimiterFor(path string) rune {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return '\t'
	default:
		return ','
	}
}

// ReadFile opens and parses a delimited file with a header row.
// Any failure is returned as an *InputError.
func ReadFile(path string, opts ReadOptions) (*Table, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, &InputError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	if opts.Delimiter == 0 {
		opts.Delimiter = DelimiterFor(path)
	}
	return Read(f, path, opts)
}

// Read parses delimited records from r. path is only used in errors.
// Every row must have as many cells as the header.
func Read(r io.Reader, path string, opts ReadOptions) (*Table, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	cols := opts.Columns.WithDefaults()

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.FieldsPerRecord = 0 // header length is enforced on every row

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &InputError{Path: path, Op: "parse", Err: errors.New("file is empty, a header row is required")}
		}
		return nil, wrapReadError(path, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	table := &Table{
		Path:          path,
		Header:        header,
		Delimiter:     opts.Delimiter,
		MedicareIndex: indexOf(header, cols.MedicareID),
		CardIndex:     indexOf(header, cols.CardNumber),
		PhoneIndex:    indexOf(header, cols.PhoneNumber),
	}

	for {
		values, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapReadError(path, err)
		}

		line, _ := reader.FieldPos(0)
		table.Records = append(table.Records, Record{
			Line:        line,
			Values:      values,
			MedicareID:  fieldAt(values, table.MedicareIndex),
			CardNumber:  fieldAt(values, table.CardIndex),
			PhoneNumber: fieldAt(values, table.PhoneIndex),
		})
	}

	return table, nil
}

func wrapReadError(path string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &InputError{Path: path, Op: "parse", Line: parseErr.Line, Err: parseErr.Err}
	}
	return &InputError{Path: path, Op: "read", Err: fmt.Errorf("reading records: %w", err)}
}
