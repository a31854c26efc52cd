// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

// Package ratings holds the user-item ratings matrix and the sources that load it.
//
// # Matrix
//
// A Matrix is a dense, rectangular table of integer ratings with one row per
// user and one column per item. The value 0 means "not rated"; the domain has
// no true zero rating. A Matrix is immutable once constructed and safe for
// concurrent reads.
//
// NewMatrix validates the shape eagerly. Ragged rows, empty input, and
// negative ratings are reported as *StructuralError at load time instead of
// surfacing later as an out-of-range access during prediction.
//
// # Sources
//
// Two Source implementations are provided:
//
//   - CSVSource: a plain-text table, one user per line, delimited integers
//   - DuckDBSource: a long-format (user_idx, item_idx, rating) table
//
// Malformed integer tokens in CSV input are reported as *ParseError with the
// line and column of the offending field. DuckDB tables whose indices would
// need more than the configured number of cells, or that rate one cell twice,
// are reported as *StructuralError.
//
// # Usage
//
//	src := ratings.NewCSVSource("ratings.csv", ',')
//	m, err := src.Load(ctx)
//	if err != nil {
//	    return fmt.Errorf("load ratings: %w", err)
//	}
//	fmt.Println(m.Users(), m.Items())
package ratings
