// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"strings"

	"ferret-records/internal/classifier"
	"ferret-records/internal/detector"
	"ferret-records/internal/formatters"
	"ferret-records/internal/observability"
	"ferret-records/internal/records"

	"github.com/google/uuid"
)

// ScanConfig holds configuration for one classification run.
type ScanConfig struct {
	FilePath   string
	OutputPath string

	// Delimiter of the input file; zero selects one from the extension
	Delimiter rune

	Columns       records.Columns
	Checks        map[detector.Category]bool
	Workers       int
	NoMatchMarker string

	// Observer receives timing and debug output; nil disables it
	Observer *observability.StandardObserver
}

// ScanResult holds the results of a classification run.
type ScanResult struct {
	Report *formatters.Report

	// MissingColumns are the classified columns the input header lacked
	MissingColumns []string
}

// OutputError reports a failure to write the classified output file
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// ClassifyFile reads the input table, classifies every record, writes the
// arranged output file and returns the report. Read failures come back as
// *records.InputError and write failures as *OutputError. No output file is
// written when reading fails.
func ClassifyFile(scanConfig ScanConfig) (*ScanResult, error) {
	observer := scanConfig.Observer
	cols := scanConfig.Columns.WithDefaults()

	var finishTiming func(bool, map[string]interface{})
	if observer != nil {
		finishTiming = observer.StartTiming("core", "classify_file", scanConfig.FilePath)
	}

	var finishStep func(bool, string)
	if observer != nil && observer.DebugObserver != nil {
		finishStep = observer.DebugObserver.StartStep("core", "read", scanConfig.FilePath)
	}
	table, err := records.ReadFile(scanConfig.FilePath, records.ReadOptions{
		Delimiter: scanConfig.Delimiter,
		Columns:   cols,
	})
	if finishStep != nil {
		if err != nil {
			finishStep(false, err.Error())
		} else {
			finishStep(true, fmt.Sprintf("%d records", len(table.Records)))
		}
	}
	if err != nil {
		if finishTiming != nil {
			finishTiming(false, map[string]interface{}{"error": err.Error()})
		}
		return nil, err
	}

	missing := table.MissingColumns(cols)
	if len(missing) > 0 {
		observer.LogDetail("core", fmt.Sprintf("input lacks columns: %s", strings.Join(missing, ", ")))
	}
	observer.LogDetail("core", fmt.Sprintf("read %d records with delimiter %q", len(table.Records), table.Delimiter))

	c := classifier.New(classifier.Options{
		Workers:  scanConfig.Workers,
		Checks:   scanConfig.Checks,
		Observer: observer,
	})
	result := c.Classify(table.Records)
	header, rows := c.Output(table, result, classifier.OutputOptions{
		NoMatchMarker: scanConfig.NoMatchMarker,
		Columns:       cols,
	})

	if scanConfig.OutputPath != "" {
		delimiter := records.DelimiterFor(scanConfig.OutputPath)
		if err := records.WriteFile(scanConfig.OutputPath, delimiter, header, rows); err != nil {
			if finishTiming != nil {
				finishTiming(false, map[string]interface{}{"error": err.Error()})
			}
			return nil, &OutputError{Path: scanConfig.OutputPath, Err: err}
		}
		observer.LogDetail("core", fmt.Sprintf("wrote %d rows to %s", len(rows), scanConfig.OutputPath))
	}

	runID := uuid.NewString()
	if observer != nil {
		runID = observer.RunID()
	}
	report := formatters.BuildReport(runID, scanConfig.FilePath, scanConfig.OutputPath, result, header, rows)

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"rows":        result.Stats.Rows,
			"found_types": len(report.Categories),
		})
	}

	return &ScanResult{Report: report, MissingColumns: missing}, nil
}
