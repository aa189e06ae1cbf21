// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"ferret-records/internal/formatters"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// maxCellWidth caps a table column so one long value doesn't blow out the layout
const maxCellWidth = 40

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green": color.New(color.FgGreen),
			"cyan":  color.New(color.FgCyan),
			"white": color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable summary line, with the classified table in verbose mode"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(report *formatters.Report, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder
	builder.WriteString(report.Message())

	if !options.Verbose {
		return builder.String(), nil
	}

	builder.WriteString("\n\n")
	builder.WriteString(f.style("white", options, fmt.Sprintf("Rows: %d", report.Stats.Rows)))
	builder.WriteString("\n\n")
	f.appendTable(&builder, report, options)

	return strings.TrimSuffix(builder.String(), "\n"), nil
}

// appendTable writes the header and every output row with columns padded
// to their display width
func (f *Formatter) appendTable(builder *strings.Builder, report *formatters.Report, options formatters.FormatterOptions) {
	table := make([][]string, 0, len(report.Rows)+1)
	table = append(table, report.Header)
	for _, row := range report.Rows {
		table = append(table, row.Cells)
	}

	widths := columnWidths(table)

	for i, row := range table {
		line := renderRow(row, widths)
		if i == 0 {
			builder.WriteString(f.style("white", options, line))
			builder.WriteString("\n")
			builder.WriteString(f.style("white", options, renderSeparator(widths)))
		} else {
			builder.WriteString(line)
		}
		builder.WriteString("\n")
	}
}

func (f *Formatter) style(name string, options formatters.FormatterOptions, s string) string {
	if options.NoColor {
		return s
	}
	return f.colors[name].Sprint(s)
}

func columnWidths(table [][]string) []int {
	var widths []int
	for _, row := range table {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			w := runewidth.StringWidth(cell)
			if w > maxCellWidth {
				w = maxCellWidth
			}
			if w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func renderRow(row []string, widths []int) string {
	cells := make([]string, len(widths))
	for i := range widths {
		content := ""
		if i < len(row) {
			content = runewidth.Truncate(row[i], maxCellWidth, "...")
		}
		cells[i] = runewidth.FillRight(content, widths[i])
	}
	return strings.TrimRight(strings.Join(cells, "  "), " ")
}

func renderSeparator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	return strings.Join(parts, "  ")
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
