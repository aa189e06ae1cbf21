// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write encodes a header and rows as delimited records
func Write(w io.Writer, delimiter rune, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if delimiter != 0 {
		cw.Comma = delimiter
	}

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing records: %w", err)
	}
	return nil
}

// WriteFile writes the records to path through a temporary file in the same
// directory, so a failed write never leaves a partial file behind
func WriteFile(path string, delimiter rune, header []string, rows [][]string) error {
	cleanPath := filepath.Clean(path)
	dir := filepath.Dir(cleanPath)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(cleanPath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating output file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if err := Write(tmp, delimiter, header, rows); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing output file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting output file permissions: %w", err)
	}
	if err := os.Rename(tmpName, cleanPath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("moving output file into place: %w", err)
	}
	return nil
}
