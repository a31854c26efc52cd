// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package ratings

import (
	"errors"
	"fmt"
)

// ErrNegativeRating is wrapped by ParseError when a field parses as an
// integer below zero.
var ErrNegativeRating = errors.New("rating must be non-negative")

// ParseError reports a token in the input table that is not a valid rating.
// Line and Column are 1-based positions in the source file.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Field  string
	Err    error
}

// Error returns a human-readable description including the source position.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d:%d: invalid rating %q: %v", e.Path, e.Line, e.Column, e.Field, e.Err)
	}
	return fmt.Sprintf("line %d, column %d: invalid rating %q: %v", e.Line, e.Column, e.Field, e.Err)
}

// Unwrap returns the underlying conversion error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// StructuralError reports a ratings table whose shape breaks the matrix
// invariants (empty, ragged, or containing negative cells).
type StructuralError struct {
	// Row is the zero-based row that violated the invariant, or -1 when the
	// violation is not tied to a single row.
	Row int

	// Want and Got are the expected and observed column counts for ragged rows.
	Want int
	Got  int

	// Reason describes the violated invariant.
	Reason string
}

// Error returns a human-readable description of the structural problem.
func (e *StructuralError) Error() string {
	if e.Row < 0 {
		return "inconsistent ratings matrix: " + e.Reason
	}
	if e.Want != e.Got {
		return fmt.Sprintf("inconsistent ratings matrix: row %d has %d columns, want %d", e.Row, e.Got, e.Want)
	}
	return fmt.Sprintf("inconsistent ratings matrix: row %d: %s", e.Row, e.Reason)
}
