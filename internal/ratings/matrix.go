// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package ratings

import (
	"context"
	"fmt"
)

// Unrated is the sentinel cell value for an item the user has not rated.
const Unrated = 0

// Source supplies a ratings matrix. Implementations are expected to validate
// the table through NewMatrix so callers always receive a rectangular matrix.
type Source interface {
	// Name returns a short identifier for logs (e.g., "csv", "duckdb").
	Name() string

	// Load reads the full table and returns an immutable matrix.
	Load(ctx context.Context) (*Matrix, error)
}

// Matrix is an immutable, rectangular user-item ratings table.
type Matrix struct {
	rows  [][]int
	items int
	rated int
}

// NewMatrix validates rows and returns a matrix that owns a private copy of
// them. The first row defines the canonical item count; every other row must
// match it.
func NewMatrix(rows [][]int) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, &StructuralError{Row: -1, Reason: "no users"}
	}

	items := len(rows[0])
	if items == 0 {
		return nil, &StructuralError{Row: 0, Reason: "no items"}
	}

	owned := make([][]int, len(rows))
	rated := 0
	for u, row := range rows {
		if len(row) != items {
			return nil, &StructuralError{Row: u, Want: items, Got: len(row)}
		}
		for i, v := range row {
			if v < 0 {
				return nil, &StructuralError{
					Row:    u,
					Want:   items,
					Got:    items,
					Reason: fmt.Sprintf("item %d has negative rating %d", i, v),
				}
			}
			if v != Unrated {
				rated++
			}
		}
		owned[u] = append([]int(nil), row...)
	}

	return &Matrix{rows: owned, items: items, rated: rated}, nil
}

// Users returns the number of rows.
func (m *Matrix) Users() int {
	return len(m.rows)
}

// Items returns the number of columns.
func (m *Matrix) Items() int {
	return m.items
}

// At returns the rating of item by user. It panics on out-of-range indices,
// like a slice access.
func (m *Matrix) At(user, item int) int {
	return m.rows[user][item]
}

// IsRated reports whether user has rated item.
func (m *Matrix) IsRated(user, item int) bool {
	return m.rows[user][item] != Unrated
}

// Row returns a copy of the user's rating vector.
func (m *Matrix) Row(user int) []int {
	return append([]int(nil), m.rows[user]...)
}

// row returns the user's rating vector without copying. Callers inside the
// package must not modify it.
func (m *Matrix) row(user int) []int {
	return m.rows[user]
}

// ValidUser reports whether user is a valid row index.
func (m *Matrix) ValidUser(user int) bool {
	return user >= 0 && user < len(m.rows)
}

// RatedCount returns how many items the user has rated.
func (m *Matrix) RatedCount(user int) int {
	n := 0
	for _, v := range m.rows[user] {
		if v != Unrated {
			n++
		}
	}
	return n
}

// Rated returns the number of cells that hold a rating.
func (m *Matrix) Rated() int {
	return m.rated
}

// Density returns the fraction of cells that hold a rating.
func (m *Matrix) Density() float64 {
	return float64(m.rated) / float64(len(m.rows)*m.items)
}

// Rows returns a deep copy of the table.
func (m *Matrix) Rows() [][]int {
	out := make([][]int, len(m.rows))
	for u := range m.rows {
		out[u] = m.Row(u)
	}
	return out
}

// Vectors exposes read-only row views for hot loops in other packages.
// The returned slices alias the matrix and must not be modified.
func (m *Matrix) Vectors() [][]int {
	out := make([][]int, len(m.rows))
	for u := range m.rows {
		out[u] = m.row(u)
	}
	return out
}
