// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package mbi

import "ferret-records/internal/help"

// GetCheckInfo returns standardized information about the MBI check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "MBI",
		ShortDescription: "Classifies Medicare Beneficiary Identifiers",
		DetailedDescription: `The MBI check classifies the Medicare identifier column of each record.

The value is normalized by removing dashes. It is classified as a Medicare Beneficiary Identifier
when the result is exactly 11 characters of uppercase letters and digits and contains none of the
letters B, I, L, O, S or Z. Lowercase letters never match. The excluded letters are rejected at
every position, which is stricter than the per-position rules of the published format.`,
		Column:             "medicare_id",
		StrippedCharacters: []string{"-"},
		Rules: []string{
			"Exactly 11 characters after normalization",
			"Only uppercase letters A-Z and digits 0-9",
			"None of the letters B, I, L, O, S, Z",
		},
		Examples: []string{
			"1EG4-TE5-MK73 -> 1EG4TE5MK73",
			"1eg4-te5-mk73 -> no match",
		},
	}
}
