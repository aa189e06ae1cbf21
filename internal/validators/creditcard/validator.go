// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package creditcard

import (
	"ferret-records/internal/detector"
	"ferret-records/internal/normalize"
)

// Issuer is the payment network inferred from a card number's leading digit
type Issuer string

const (
	IssuerAmexDinersCarteBlanche Issuer = "Amex/Diners/CarteBlanche"
	IssuerVisa                   Issuer = "Visa"
	IssuerMasterCard             Issuer = "MasterCard"
	IssuerDiscover               Issuer = "Discover"
	IssuerAirline                Issuer = "Airline"

	// IssuerUnknown marks a structurally valid number whose issuer is indeterminate
	IssuerUnknown Issuer = "unknown issuer"
)

const (
	minLength = 13
	maxLength = 19
)

// Validator implements the detector.Validator interface for payment card numbers.
// A value matches when, after removing dashes, underscores and spaces, it is
// 13 to 19 decimal digits. No checksum is applied.
type Validator struct {
	stripChars string

	// Leading digit to issuer lookup
	issuers map[byte]Issuer
}

// NewValidator creates and returns a new Validator instance
func NewValidator() *Validator {
	return &Validator{
		stripChars: normalize.CardChars,
		issuers: map[byte]Issuer{
			'3': IssuerAmexDinersCarteBlanche,
			'4': IssuerVisa,
			'5': IssuerMasterCard,
			'6': IssuerDiscover,
			'9': IssuerAirline,
		},
	}
}

// Category implements the detector.Validator interface
func (v *Validator) Category() detector.Category {
	return detector.CategoryCreditCard
}

// Classify implements the detector.Validator interface
func (v *Validator) Classify(raw string) detector.Result {
	number := normalize.Strip(raw, v.stripChars)
	if !v.isValidNumber(number) {
		return detector.NoMatch
	}
	return detector.MatchWithIssuer(number, string(v.DetectIssuer(number)))
}

// isValidNumber checks the digit-only and length rules
func (v *Validator) isValidNumber(number string) bool {
	length := len(number)
	return length >= minLength && length <= maxLength && normalize.IsDigits(number)
}

// DetectIssuer maps the first digit of a normalized card number to its issuer.
// Callers are expected to have validated the number first.
func (v *Validator) DetectIssuer(number string) Issuer {
	if number == "" {
		return IssuerUnknown
	}
	if issuer, ok := v.issuers[number[0]]; ok {
		return issuer
	}
	return IssuerUnknown
}
