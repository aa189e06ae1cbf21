// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters_test

import (
	"encoding/json"
	"strings"
	"testing"

	"ferret-records/internal/classifier"
	"ferret-records/internal/detector"
	"ferret-records/internal/formatters"
	_ "ferret-records/internal/formatters/csv"
	_ "ferret-records/internal/formatters/json"
	_ "ferret-records/internal/formatters/text"
	_ "ferret-records/internal/formatters/yaml"
	"ferret-records/internal/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sample = `medicare_id,cc_num,phone_num
1EG4-TE5-MK73,not-a-card,555
invalid,4111-1111-1111-1111,(555) 0123456
,,
`

func buildReport(t *testing.T) *formatters.Report {
	t.Helper()
	table, err := records.Read(strings.NewReader(sample), "sample.csv", records.ReadOptions{})
	require.NoError(t, err)

	c := classifier.New(classifier.Options{})
	result := c.Classify(table.Records)
	header, rows := c.Output(table, result, classifier.OutputOptions{})
	return formatters.BuildReport("run-1", "sample.csv", "out.csv", result, header, rows)
}

func TestSummaryMessage(t *testing.T) {
	tests := []struct {
		name       string
		categories []detector.Category
		want       string
	}{
		{"none", nil, "Found the following sensitive value types: "},
		{"mbi and card", []detector.Category{detector.CategoryMBI, detector.CategoryCreditCard},
			"Found the following sensitive value types: Medicare Beneficiary Identifiers, Credit Cards, "},
		{"all", detector.Categories,
			"Found the following sensitive value types: Medicare Beneficiary Identifiers, Credit Cards, Phone Numbers, "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatters.SummaryMessage(tt.categories))
		})
	}
}

func TestRegistry_ListsBuiltInFormats(t *testing.T) {
	assert.Equal(t, []string{"csv", "json", "text", "yaml"}, formatters.List())
	assert.Equal(t, "application/json", formatters.GetFormatInfo("json").MimeType)
	assert.Empty(t, formatters.GetFormatInfo("sarif").Name)
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := formatters.Export("xml", buildReport(t), formatters.FormatterOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format 'xml'")
}

func TestText_SummaryOnly(t *testing.T) {
	out, err := formatters.Export("text", buildReport(t), formatters.FormatterOptions{NoColor: true})
	require.NoError(t, err)
	assert.Equal(t, "Found the following sensitive value types: Medicare Beneficiary Identifiers, Credit Cards, ", out)
}

func TestText_VerboseTable(t *testing.T) {
	out, err := formatters.Export("text", buildReport(t), formatters.FormatterOptions{Verbose: true, NoColor: true})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "Rows: 3", lines[2])
	assert.True(t, strings.HasPrefix(lines[4], "medicare_id"))
	assert.Contains(t, lines[4], "issuer")
	assert.True(t, strings.HasPrefix(lines[5], "---"))
	assert.Contains(t, lines[6], "1EG4TE5MK73")
	assert.Contains(t, lines[7], "4111111111111111")
	assert.Contains(t, lines[7], "Visa")
	assert.Len(t, lines, 9)
}

func TestJSON_Structure(t *testing.T) {
	out, err := formatters.Export("json", buildReport(t), formatters.FormatterOptions{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "run-1", decoded["run_id"])
	assert.Equal(t, float64(3), decoded["row_count"])
	assert.Equal(t, []any{"MBI", "CREDIT_CARD"}, decoded["found_types"])
	assert.NotContains(t, decoded, "rows")
}

func TestJSON_VerboseIncludesRows(t *testing.T) {
	out, err := formatters.Export("json", buildReport(t), formatters.FormatterOptions{Verbose: true})
	require.NoError(t, err)

	var decoded struct {
		Rows []struct {
			Line    int `json:"line"`
			Results map[string]struct {
				Matched bool   `json:"matched"`
				Issuer  string `json:"issuer"`
			} `json:"results"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Rows, 3)
	assert.Equal(t, 3, decoded.Rows[1].Line)
	assert.True(t, decoded.Rows[1].Results["CREDIT_CARD"].Matched)
	assert.Equal(t, "Visa", decoded.Rows[1].Results["CREDIT_CARD"].Issuer)
}

func TestYAML_Structure(t *testing.T) {
	out, err := formatters.Export("yaml", buildReport(t), formatters.FormatterOptions{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 3, decoded["row_count"])
	assert.Equal(t, "Found the following sensitive value types: Medicare Beneficiary Identifiers, Credit Cards, ", decoded["message"])
}

func TestCSV_MatchedFieldsOnly(t *testing.T) {
	out, err := formatters.Export("csv", buildReport(t), formatters.FormatterOptions{})
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"Line,Type,Matched,Value,Issuer",
		"2,MBI,true,1EG4TE5MK73,",
		"3,CREDIT_CARD,true,4111111111111111,Visa",
	}, "\n"), out)
}

func TestCSV_VerboseListsEveryField(t *testing.T) {
	out, err := formatters.Export("csv", buildReport(t), formatters.FormatterOptions{Verbose: true})
	require.NoError(t, err)
	assert.Len(t, strings.Split(out, "\n"), 1+3*3)
}
