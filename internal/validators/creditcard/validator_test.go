// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package creditcard

import (
	"strings"
	"testing"

	"ferret-records/internal/detector"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name string
		raw  string
		want detector.Result
	}{
		{"dashed visa", "4111-1111-1111-1111", detector.MatchWithIssuer("4111111111111111", "Visa")},
		{"airline", "9999999999999", detector.MatchWithIssuer("9999999999999", "Airline")},
		{"unknown issuer", "1234567890123", detector.MatchWithIssuer("1234567890123", "unknown issuer")},
		{"too short", "123", detector.NoMatch},
		{"amex with spaces", "3782 822463 10005", detector.MatchWithIssuer("378282246310005", "Amex/Diners/CarteBlanche")},
		{"mastercard underscores", "5555_5555_5555_4444", detector.MatchWithIssuer("5555555555554444", "MasterCard")},
		{"discover", "6011111111111117", detector.MatchWithIssuer("6011111111111117", "Discover")},
		{"nineteen digits", "4" + strings.Repeat("0", 18), detector.MatchWithIssuer("4"+strings.Repeat("0", 18), "Visa")},
		{"twenty digits", "4" + strings.Repeat("0", 19), detector.NoMatch},
		{"twelve digits", "411111111111", detector.NoMatch},
		{"letters", "4111-1111-1111-111X", detector.NoMatch},
		{"dots are not stripped", "4111.1111.1111.1111", detector.NoMatch},
		{"plus is not stripped", "+4111111111111111", detector.NoMatch},
		{"empty", "", detector.NoMatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v.Classify(tc.raw))
		})
	}
}

func TestClassify_LeadingDigitIssuers(t *testing.T) {
	v := NewValidator()
	want := map[byte]Issuer{
		'0': IssuerUnknown,
		'1': IssuerUnknown,
		'2': IssuerUnknown,
		'3': IssuerAmexDinersCarteBlanche,
		'4': IssuerVisa,
		'5': IssuerMasterCard,
		'6': IssuerDiscover,
		'7': IssuerUnknown,
		'8': IssuerUnknown,
		'9': IssuerAirline,
	}
	for digit, issuer := range want {
		number := string(digit) + strings.Repeat("1", 15)
		result := v.Classify(number)
		assert.True(t, result.Matched, number)
		assert.Equal(t, string(issuer), result.Issuer, number)
	}
}

func TestClassify_NoIssuerWithoutMatch(t *testing.T) {
	v := NewValidator()
	for _, raw := range []string{"4111", "4111-1111-1111-111a", "not a card", "41111111111111111111"} {
		result := v.Classify(raw)
		assert.False(t, result.Matched, raw)
		assert.Empty(t, result.Issuer, raw)
		assert.Empty(t, result.Value, raw)
	}
}

func TestDetectIssuer_Empty(t *testing.T) {
	assert.Equal(t, IssuerUnknown, NewValidator().DetectIssuer(""))
}
