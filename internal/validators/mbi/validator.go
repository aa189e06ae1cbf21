// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package mbi

import (
	"strings"

	"ferret-records/internal/detector"
	"ferret-records/internal/normalize"
)

const (
	mbiLength = 11

	// Letters never allowed anywhere in an identifier
	excludedLetters = "BILOSZ"
)

// Validator implements the detector.Validator interface for Medicare
// Beneficiary Identifiers. The rule is a simplified one: 11 characters from
// [A-Z0-9] with none of the excluded letters at any position. Lowercase
// letters never match.
type Validator struct {
	stripChars string
}

// NewValidator creates and returns a new Validator instance
func NewValidator() *Validator {
	return &Validator{stripChars: normalize.MBIChars}
}

// Category implements the detector.Validator interface
func (v *Validator) Category() detector.Category {
	return detector.CategoryMBI
}

// Classify implements the detector.Validator interface
func (v *Validator) Classify(raw string) detector.Result {
	id := normalize.Strip(raw, v.stripChars)
	if len(id) != mbiLength {
		return detector.NoMatch
	}

	for i := 0; i < len(id); i++ {
		if !isUpperAlphanumeric(id[i]) {
			return detector.NoMatch
		}
	}

	if strings.ContainsAny(id, excludedLetters) {
		return detector.NoMatch
	}

	return detector.Match(id)
}

func isUpperAlphanumeric(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
