// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package creditcard

import "ferret-records/internal/help"

// GetCheckInfo returns standardized information about the credit card check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "CREDIT_CARD",
		ShortDescription: "Classifies payment card numbers and tags their issuer",
		DetailedDescription: `The Credit Card check classifies the card number column of each record.

The value is normalized by removing dashes, underscores and spaces. It is classified as a card
number when the result is made only of decimal digits and is 13 to 19 digits long. The issuer is
then derived from the first digit. Numbers with any other leading digit are still card numbers,
tagged with an unknown issuer. No Luhn checksum is applied.`,
		Column:             "cc_num",
		StrippedCharacters: []string{"-", "_", " "},
		Rules: []string{
			"Only decimal digits after normalization",
			"Between 13 and 19 digits long",
		},
		Metadata: []string{
			"issuer: 3 -> " + string(IssuerAmexDinersCarteBlanche),
			"issuer: 4 -> " + string(IssuerVisa),
			"issuer: 5 -> " + string(IssuerMasterCard),
			"issuer: 6 -> " + string(IssuerDiscover),
			"issuer: 9 -> " + string(IssuerAirline),
			"issuer: any other digit -> " + string(IssuerUnknown),
		},
		Examples: []string{
			"4111-1111-1111-1111 -> 4111111111111111 (Visa)",
			"1234567890123 -> 1234567890123 (unknown issuer)",
		},
	}
}
