// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"ferret-records/internal/detector"
	"ferret-records/internal/normalize"
)

const (
	minLength = 10
	maxLength = 14
)

// Validator implements the detector.Validator interface for telephone numbers.
// Parentheses and dots are not formatting characters here, so numbers written
// as (555) 012-3456 do not match.
type Validator struct {
	stripChars string
}

// NewValidator creates and returns a new Validator instance
func NewValidator() *Validator {
	return &Validator{stripChars: normalize.PhoneChars}
}

// Category implements the detector.Validator interface
func (v *Validator) Category() detector.Category {
	return detector.CategoryPhone
}

// Classify implements the detector.Validator interface
func (v *Validator) Classify(raw string) detector.Result {
	number := normalize.Strip(raw, v.stripChars)
	if len(number) < minLength || len(number) > maxLength || !normalize.IsDigits(number) {
		return detector.NoMatch
	}
	return detector.Match(number)
}
