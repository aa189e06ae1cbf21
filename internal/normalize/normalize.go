// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package normalize

import "strings"

// Strip sets used by the category validators
const (
	MBIChars   = "-"
	CardChars  = "-_ "
	PhoneChars = "-+_ "
)

// Strip removes every occurrence of the characters in stripChars from raw,
// keeping the remaining characters in order. No case folding is applied.
func Strip(raw, stripChars string) string {
	if raw == "" || stripChars == "" {
		return raw
	}

	// Fast path: nothing to remove
	if !strings.ContainsAny(raw, stripChars) {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if strings.ContainsRune(stripChars, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsDigits reports whether s is non-empty and made only of ASCII decimal digits
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
