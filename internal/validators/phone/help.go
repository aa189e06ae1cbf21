// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import "ferret-records/internal/help"

// GetCheckInfo returns standardized information about the phone number check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "PHONE",
		ShortDescription: "Classifies telephone numbers",
		DetailedDescription: `The Phone check classifies the phone number column of each record.

The value is normalized by removing dashes, plus signs, underscores and spaces. It is classified
as a phone number when the result is made only of decimal digits and is 10 to 14 digits long.
Parentheses are kept, so a number written with an area code in parentheses does not match.`,
		Column:             "phone_num",
		StrippedCharacters: []string{"-", "+", "_", " "},
		Rules: []string{
			"Only decimal digits after normalization",
			"Between 10 and 14 digits long",
		},
		Examples: []string{
			"+1 555-012-3456 -> 15550123456",
			"(555) 0123456 -> no match",
		},
	}
}
