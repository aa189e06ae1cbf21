// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Medicare Beneficiary Identifiers", CategoryMBI.Label())
	assert.Equal(t, "Credit Cards", CategoryCreditCard.Label())
	assert.Equal(t, "Phone Numbers", CategoryPhone.Label())
	assert.Equal(t, "OTHER", Category("OTHER").Label())
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("PHONE")
	assert.True(t, ok)
	assert.Equal(t, CategoryPhone, c)

	_, ok = ParseCategory("phone")
	assert.False(t, ok)
}

func TestResultConstructors(t *testing.T) {
	assert.False(t, NoMatch.Matched)
	assert.Empty(t, NoMatch.Value)

	m := Match("5550123456")
	assert.True(t, m.Matched)
	assert.Equal(t, "5550123456", m.Value)
	assert.Empty(t, m.Issuer)

	c := MatchWithIssuer("4111111111111111", "Visa")
	assert.True(t, c.Matched)
	assert.Equal(t, "Visa", c.Issuer)
}
