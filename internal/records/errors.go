// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package records

import "fmt"

// InputError reports an input file that could not be opened, read, or parsed.
// It is always fatal for a run.
type InputError struct {
	Path string
	Op   string // "open", "read" or "parse"
	Line int    // input line of a parse failure, 0 when not applicable
	Err  error
}

func (e *InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("cannot %s input file %s (line %d): %v", e.Op, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("cannot %s input file %s: %v", e.Op, e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
