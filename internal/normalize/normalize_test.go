// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		chars string
		want  string
	}{
		{"empty input", "", CardChars, ""},
		{"nothing to strip", "4111111111111111", CardChars, "4111111111111111"},
		{"dashes", "4111-1111-1111-1111", CardChars, "4111111111111111"},
		{"mixed separators", "4111 1111_1111-1111", CardChars, "4111111111111111"},
		{"plus kept for cards", "+4111", CardChars, "+4111"},
		{"plus stripped for phones", "+1 555-012-3456", PhoneChars, "15550123456"},
		{"parens are not stripped", "(555) 0123456", PhoneChars, "(555)0123456"},
		{"no case folding", "1eg4-te5-mk73", MBIChars, "1eg4te5mk73"},
		{"empty strip set", "a-b", "", "a-b"},
		{"only strip chars", "- _ -", CardChars, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Strip(tc.raw, tc.chars))
		})
	}
}

func TestStrip_Idempotent(t *testing.T) {
	inputs := []string{
		"", "abc", "1EG4-TE5-MK73", "+1 (555) 012-3456", "4111_1111 1111-1111", "--++__  ", "ünï-cödé",
	}
	for _, chars := range []string{MBIChars, CardChars, PhoneChars} {
		for _, in := range inputs {
			once := Strip(in, chars)
			assert.Equal(t, once, Strip(once, chars), "input %q strip set %q", in, chars)
		}
	}
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("0123456789"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("12a4"))
	assert.False(t, IsDigits("١٢٣"), "non-ASCII digits are not decimal digits here")
	assert.False(t, IsDigits("-12"))
}
