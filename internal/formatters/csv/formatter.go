// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"fmt"
	"strings"

	"ferret-records/internal/detector"
	"ferret-records/internal/formatters"
)

// Formatter implements CSV output of per-row diagnostics
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated per-field diagnostics for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

// Format writes one row per classified field. Without verbose only matched
// fields are listed.
func (f *Formatter) Format(report *formatters.Report, options formatters.FormatterOptions) (string, error) {
	headers := []string{"Line", "Type", "Matched", "Value", "Issuer"}
	csvRows := []string{strings.Join(headers, ",")}

	for _, row := range report.Rows {
		for _, c := range detector.Categories {
			result, ok := row.Results[c]
			if !ok || (!result.Matched && !options.Verbose) {
				continue
			}
			csvRows = append(csvRows, strings.Join([]string{
				fmt.Sprintf("%d", row.Line),
				f.escapeCSVField(string(c)),
				fmt.Sprintf("%t", result.Matched),
				f.escapeCSVField(result.Value),
				f.escapeCSVField(result.Issuer),
			}, ","))
		}
	}

	return strings.Join(csvRows, "\n"), nil
}

// escapeCSVField properly escapes a field for CSV format and prevents CSV injection
func (f *Formatter) escapeCSVField(field string) string {
	field = f.sanitizeFormulaInjection(field)

	// If field contains comma, quote, or newline, wrap in quotes and escape internal quotes
	if strings.ContainsAny(field, ",\"\n\r") {
		escaped := strings.ReplaceAll(field, "\"", "\"\"")
		return fmt.Sprintf("\"%s\"", escaped)
	}
	return field
}

// sanitizeFormulaInjection prevents CSV injection attacks by sanitizing formula characters
func (f *Formatter) sanitizeFormulaInjection(field string) string {
	if len(field) == 0 {
		return field
	}

	firstChar := field[0]
	if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' {
		// Prefix with single quote to prevent formula execution
		return "'" + field
	}

	return field
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
