// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// Category identifies a sensitive-data category a column can be classified into
type Category string

const (
	CategoryMBI        Category = "MBI"
	CategoryCreditCard Category = "CREDIT_CARD"
	CategoryPhone      Category = "PHONE"
)

// Categories lists every category in canonical report order
var Categories = []Category{CategoryMBI, CategoryCreditCard, CategoryPhone}

// Label returns the human-readable plural label used in summary messages
func (c Category) Label() string {
	switch c {
	case CategoryMBI:
		return "Medicare Beneficiary Identifiers"
	case CategoryCreditCard:
		return "Credit Cards"
	case CategoryPhone:
		return "Phone Numbers"
	default:
		return string(c)
	}
}

// ParseCategory resolves a category from its name, case-sensitive
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// Result is the outcome of classifying one value against one category.
// A result that did not match never carries a value or an issuer.
type Result struct {
	Matched bool
	Value   string // normalized value
	Issuer  string // card issuer, empty for other categories
}

// NoMatch is the result for a value outside a category
var NoMatch = Result{}

// Match returns a matched result carrying the normalized value
func Match(value string) Result {
	return Result{Matched: true, Value: value}
}

// MatchWithIssuer returns a matched result with issuer metadata
func MatchWithIssuer(value, issuer string) Result {
	return Result{Matched: true, Value: value, Issuer: issuer}
}

// Validator classifies raw field values for a single category
type Validator interface {
	// Category returns the category this validator decides membership for
	Category() Category

	// Classify normalizes raw and reports whether it belongs to the category
	Classify(raw string) Result
}
