// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

import (
	"fmt"

	"ferret-records/internal/detector"
	"ferret-records/internal/observability"
	"ferret-records/internal/parallel"
	"ferret-records/internal/records"
	"ferret-records/internal/validators/creditcard"
	"ferret-records/internal/validators/mbi"
	"ferret-records/internal/validators/phone"
)

// Options configures a Classifier
type Options struct {
	// Workers is the number of classification workers. 1 runs inline and
	// 0 or less selects one per CPU.
	Workers int

	// Checks limits classification to the given categories. Nil enables all.
	Checks map[detector.Category]bool

	Observer *observability.StandardObserver
}

// Classifier applies the category validators to every record of a table
type Classifier struct {
	validators map[detector.Category]detector.Validator
	workers    int
	observer   *observability.StandardObserver
}

// Row is the classification of one input record
type Row struct {
	Record      records.Record
	MedicareID  detector.Result
	CardNumber  detector.Result
	PhoneNumber detector.Result
}

// Result returns the row's result for a category
func (r Row) Result(c detector.Category) detector.Result {
	switch c {
	case detector.CategoryMBI:
		return r.MedicareID
	case detector.CategoryCreditCard:
		return r.CardNumber
	case detector.CategoryPhone:
		return r.PhoneNumber
	default:
		return detector.NoMatch
	}
}

// Stats counts what a run classified
type Stats struct {
	Rows         int                       `json:"rows" yaml:"rows"`
	Matches      map[detector.Category]int `json:"matches" yaml:"matches"`
	AbsentFields int                       `json:"absent_fields" yaml:"absent_fields"`
}

func newStats() Stats {
	return Stats{Matches: make(map[detector.Category]int)}
}

func (s *Stats) merge(other Stats) {
	s.Rows += other.Rows
	s.AbsentFields += other.AbsentFields
	for c, n := range other.Matches {
		s.Matches[c] += n
	}
}

// Result is the outcome of classifying a whole table
type Result struct {
	Rows    []Row
	Summary *Summary
	Stats   Stats
}

// tally is the per-worker share of a run's summary and stats
type tally struct {
	summary *Summary
	stats   Stats
}

func (t *tally) record(row Row, absent int) {
	t.stats.Rows++
	t.stats.AbsentFields += absent
	for _, c := range detector.Categories {
		if row.Result(c).Matched {
			t.summary.Add(c)
			t.stats.Matches[c]++
		}
	}
}

// StandardValidators returns one validator per category, in canonical order
func StandardValidators() []detector.Validator {
	return []detector.Validator{
		mbi.NewValidator(),
		creditcard.NewValidator(),
		phone.NewValidator(),
	}
}

// New creates a Classifier with the standard validators
func New(opts Options) *Classifier {
	c := &Classifier{
		validators: make(map[detector.Category]detector.Validator),
		workers:    opts.Workers,
		observer:   opts.Observer,
	}
	for _, v := range StandardValidators() {
		if opts.Checks == nil || opts.Checks[v.Category()] {
			c.validators[v.Category()] = v
		}
	}
	return c
}

// Enabled reports whether the category is classified by this Classifier
func (c *Classifier) Enabled(cat detector.Category) bool {
	_, ok := c.validators[cat]
	return ok
}

// Classify runs every enabled validator over every record. Rows come back in
// input order for any worker count, and the summary holds exactly the
// categories some row matched.
func (c *Classifier) Classify(recs []records.Record) *Result {
	var finishTiming func(bool, map[string]interface{})
	if c.observer != nil {
		finishTiming = c.observer.StartTiming("classifier", "classify", "records")
	}

	workers := parallel.EffectiveWorkers(c.workers)
	if workers > len(recs) && len(recs) > 0 {
		workers = len(recs)
	}

	tallies := make([]*tally, workers)
	for i := range tallies {
		tallies[i] = &tally{summary: NewSummary(), stats: newStats()}
	}

	rows := parallel.ProcessInOrder(recs, workers, func(workerID int, rec records.Record) Row {
		row, absent := c.classifyRecord(rec)
		tallies[workerID].record(row, absent)
		return row
	}, c.observer)

	result := &Result{Rows: rows, Summary: NewSummary(), Stats: newStats()}
	for _, t := range tallies {
		result.Summary.Merge(t.summary)
		result.Stats.merge(t.stats)
	}

	if c.observer != nil && c.observer.DebugObserver != nil {
		for _, cat := range detector.Categories {
			c.observer.DebugObserver.LogMetric("classifier", string(cat)+"_matches", result.Stats.Matches[cat])
		}
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"rows":       result.Stats.Rows,
			"workers":    workers,
			"categories": result.Summary.Len(),
		})
	}

	return result
}

// classifyRecord classifies the three fields of one record and returns the
// number of enabled fields that were absent
func (c *Classifier) classifyRecord(rec records.Record) (Row, int) {
	row := Row{Record: rec}
	absent := 0

	classify := func(cat detector.Category, field records.Field) detector.Result {
		v, ok := c.validators[cat]
		if !ok {
			return detector.NoMatch
		}
		if !field.Present {
			absent++
			c.observer.LogDetail("classifier", fmt.Sprintf("line %d: %s field absent", rec.Line, cat))
			return detector.NoMatch
		}
		return v.Classify(field.Value)
	}

	row.MedicareID = classify(detector.CategoryMBI, rec.MedicareID)
	row.CardNumber = classify(detector.CategoryCreditCard, rec.CardNumber)
	row.PhoneNumber = classify(detector.CategoryPhone, rec.PhoneNumber)
	return row, absent
}
