// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"sort"
	"strings"

	"ferret-records/internal/classifier"
	"ferret-records/internal/detector"
)

// SummaryPrefix starts the one-line summary of found categories
const SummaryPrefix = "Found the following sensitive value types: "

// FormatterOptions defines configuration options for formatters
type FormatterOptions struct {
	Verbose bool // Whether to include the row count and classified rows
	NoColor bool // Whether to disable colored output
}

// Formatter interface defines methods that all report formatters must implement
type Formatter interface {
	// Format renders the report in the formatter's specific output format
	Format(report *Report, options FormatterOptions) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text", "csv")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format
	FileExtension() string
}

// Report is everything a formatter may render about one run
type Report struct {
	RunID      string
	Source     string
	Output     string
	Categories []detector.Category
	Stats      classifier.Stats

	// Header and Rows are the output table as written to the output file
	Header []string
	Rows   []RowReport
}

// RowReport pairs an output row with its per-category results
type RowReport struct {
	Line    int
	Cells   []string
	Results map[detector.Category]detector.Result
}

// BuildReport assembles a report from a classification result and the
// output table built from it
func BuildReport(runID, source, output string, result *classifier.Result, header []string, rows [][]string) *Report {
	report := &Report{
		RunID:      runID,
		Source:     source,
		Output:     output,
		Categories: result.Summary.Categories(),
		Stats:      result.Stats,
		Header:     header,
		Rows:       make([]RowReport, len(result.Rows)),
	}

	for i, row := range result.Rows {
		results := make(map[detector.Category]detector.Result, len(detector.Categories))
		for _, c := range detector.Categories {
			results[c] = row.Result(c)
		}
		var cells []string
		if i < len(rows) {
			cells = rows[i]
		}
		report.Rows[i] = RowReport{Line: row.Record.Line, Cells: cells, Results: results}
	}

	return report
}

// Message returns the one-line summary of found categories
func (r *Report) Message() string {
	return SummaryMessage(r.Categories)
}

// SummaryMessage lists the category labels, each followed by ", ", after the
// summary prefix. Categories are expected in canonical order.
func SummaryMessage(categories []detector.Category) string {
	var b strings.Builder
	b.WriteString(SummaryPrefix)
	for _, c := range categories {
		b.WriteString(c.Label())
		b.WriteString(", ")
	}
	return b.String()
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names, sorted
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatInfo provides metadata about a formatter
type FormatInfo struct {
	Name        string
	Description string
	Extension   string
	MimeType    string
}

// DefaultRegistry is the global formatter registry
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the default registry
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get is a convenience function to get a formatter from the default registry
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List is a convenience function to list all formatters in the default registry
func List() []string {
	return DefaultRegistry.List()
}

// Export renders a report with the named formatter
func Export(format string, report *Report, options FormatterOptions) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(List(), ", "))
	}
	return formatter.Format(report, options)
}

// GetFormatInfo returns metadata about a specific formatter
func GetFormatInfo(name string) FormatInfo {
	formatter, exists := Get(name)
	if !exists {
		return FormatInfo{}
	}

	info := FormatInfo{
		Name:        formatter.Name(),
		Description: formatter.Description(),
		Extension:   formatter.FileExtension(),
	}

	switch name {
	case "json":
		info.MimeType = "application/json"
	case "csv":
		info.MimeType = "text/csv"
	case "yaml":
		info.MimeType = "application/x-yaml"
	case "text":
		info.MimeType = "text/plain"
	default:
		info.MimeType = "application/octet-stream"
	}

	return info
}
