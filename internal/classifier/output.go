// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

import (
	"ferret-records/internal/detector"
	"ferret-records/internal/records"
)

// OutputOptions controls how classified rows become output cells
type OutputOptions struct {
	// NoMatchMarker is written to target cells whose value did not match
	NoMatchMarker string

	Columns records.Columns
}

// Output builds the output header and rows for a classified table. Target
// columns of enabled checks are replaced by the normalized value or the
// no-match marker, and are appended when the input lacked them. An issuer
// column is appended, or overwritten when the input already has one.
func (c *Classifier) Output(table *records.Table, result *Result, opts OutputOptions) ([]string, [][]string) {
	cols := opts.Columns.WithDefaults()

	header := append([]string(nil), table.Header...)
	columnIndex := func(name string, existing int) int {
		if existing >= 0 {
			return existing
		}
		for i, h := range header {
			if h == name {
				return i
			}
		}
		header = append(header, name)
		return len(header) - 1
	}

	type target struct {
		category detector.Category
		index    int
	}
	var targets []target
	if c.Enabled(detector.CategoryMBI) {
		targets = append(targets, target{detector.CategoryMBI, columnIndex(cols.MedicareID, table.MedicareIndex)})
	}
	if c.Enabled(detector.CategoryCreditCard) {
		targets = append(targets, target{detector.CategoryCreditCard, columnIndex(cols.CardNumber, table.CardIndex)})
	}
	if c.Enabled(detector.CategoryPhone) {
		targets = append(targets, target{detector.CategoryPhone, columnIndex(cols.PhoneNumber, table.PhoneIndex)})
	}
	issuerIndex := columnIndex(records.IssuerColumn, -1)

	rows := make([][]string, len(result.Rows))
	for i, row := range result.Rows {
		cells := make([]string, len(header))
		copy(cells, row.Record.Values)

		for _, t := range targets {
			cells[t.index] = cellValue(row.Result(t.category), opts.NoMatchMarker)
		}

		issuer := opts.NoMatchMarker
		if row.CardNumber.Matched {
			issuer = row.CardNumber.Issuer
		}
		cells[issuerIndex] = issuer

		rows[i] = cells
	}

	return header, rows
}

func cellValue(r detector.Result, marker string) string {
	if r.Matched {
		return r.Value
	}
	return marker
}
