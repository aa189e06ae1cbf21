// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package records

// Default names of the columns the classifier reads
const (
	DefaultMedicareColumn = "medicare_id"
	DefaultCardColumn     = "cc_num"
	DefaultPhoneColumn    = "phone_num"

	// IssuerColumn is added to every output record
	IssuerColumn = "issuer"
)

// Columns names the input columns holding each classified field
type Columns struct {
	MedicareID  string `yaml:"medicare_id"`
	CardNumber  string `yaml:"cc_num"`
	PhoneNumber string `yaml:"phone_num"`
}

// DefaultColumns returns the standard column names
func DefaultColumns() Columns {
	return Columns{
		MedicareID:  DefaultMedicareColumn,
		CardNumber:  DefaultCardColumn,
		PhoneNumber: DefaultPhoneColumn,
	}
}

// WithDefaults fills any empty column name with its default
func (c Columns) WithDefaults() Columns {
	d := DefaultColumns()
	if c.MedicareID == "" {
		c.MedicareID = d.MedicareID
	}
	if c.CardNumber == "" {
		c.CardNumber = d.CardNumber
	}
	if c.PhoneNumber == "" {
		c.PhoneNumber = d.PhoneNumber
	}
	return c
}

// Field is an optional cell value. A column missing from the header or an
// empty cell is not present.
type Field struct {
	Value   string
	Present bool
}

// NewField builds a Field from a cell value
func NewField(value string) Field {
	return Field{Value: value, Present: value != ""}
}

// Record is one data row of the input table
type Record struct {
	// Line is the 1-based line of the row in the input file, header included
	Line int

	// Values holds the cells in header order
	Values []string

	MedicareID  Field
	CardNumber  Field
	PhoneNumber Field
}

// Table is a parsed input file
type Table struct {
	Path      string
	Header    []string
	Records   []Record
	Delimiter rune

	// Positions of the classified columns in Header, -1 when absent
	MedicareIndex int
	CardIndex     int
	PhoneIndex    int
}

// MissingColumns returns the classified columns absent from the header
func (t *Table) MissingColumns(cols Columns) []string {
	var missing []string
	if t.MedicareIndex < 0 {
		missing = append(missing, cols.MedicareID)
	}
	if t.CardIndex < 0 {
		missing = append(missing, cols.CardNumber)
	}
	if t.PhoneIndex < 0 {
		missing = append(missing, cols.PhoneNumber)
	}
	return missing
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

func fieldAt(values []string, idx int) Field {
	if idx < 0 || idx >= len(values) {
		return Field{}
	}
	return NewField(values[idx])
}
