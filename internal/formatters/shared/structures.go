// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"ferret-records/internal/detector"
	"ferret-records/internal/formatters"
)

// JSONReport represents the top-level structure for JSON/YAML output
type JSONReport struct {
	RunID      string         `json:"run_id" yaml:"run_id"`
	Source     string         `json:"source" yaml:"source"`
	Output     string         `json:"output,omitempty" yaml:"output,omitempty"`
	Message    string         `json:"message" yaml:"message"`
	FoundTypes []string       `json:"found_types" yaml:"found_types"`
	RowCount   int            `json:"row_count" yaml:"row_count"`
	Matches    map[string]int `json:"matches" yaml:"matches"`
	Absent     int            `json:"absent_fields" yaml:"absent_fields"`
	Rows       []JSONRow      `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// JSONRow is the per-row diagnostic in JSON/YAML format
type JSONRow struct {
	Line    int                  `json:"line" yaml:"line"`
	Results map[string]JSONMatch `json:"results" yaml:"results"`
}

// JSONMatch represents one category result in JSON/YAML format
type JSONMatch struct {
	Matched bool   `json:"matched" yaml:"matched"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	Issuer  string `json:"issuer,omitempty" yaml:"issuer,omitempty"`
}

// ConvertReport converts a report to the JSON/YAML structure. Rows are only
// included in verbose mode.
func ConvertReport(report *formatters.Report, options formatters.FormatterOptions) JSONReport {
	out := JSONReport{
		RunID:      report.RunID,
		Source:     report.Source,
		Output:     report.Output,
		Message:    report.Message(),
		FoundTypes: make([]string, 0, len(report.Categories)),
		RowCount:   report.Stats.Rows,
		Matches:    make(map[string]int, len(detector.Categories)),
		Absent:     report.Stats.AbsentFields,
	}

	for _, c := range report.Categories {
		out.FoundTypes = append(out.FoundTypes, string(c))
	}
	for _, c := range detector.Categories {
		out.Matches[string(c)] = report.Stats.Matches[c]
	}

	if options.Verbose {
		for _, row := range report.Rows {
			jsonRow := JSONRow{Line: row.Line, Results: make(map[string]JSONMatch, len(row.Results))}
			for c, r := range row.Results {
				jsonRow.Results[string(c)] = JSONMatch{Matched: r.Matched, Value: r.Value, Issuer: r.Issuer}
			}
			out.Rows = append(out.Rows, jsonRow)
		}
	}

	return out
}
