// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package ratings

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/duckdb/duckdb-go/v2"
)

// DefaultTable is the table read by DuckDBSource when none is configured.
const DefaultTable = "ratings"

// DefaultMaxCells bounds users*items for tables loaded by DuckDBSource.
const DefaultMaxCells = 10_000_000

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DuckDBSource loads a ratings matrix from a long-format DuckDB table with
// the columns user_idx, item_idx and rating. Indices are zero-based; cells
// without a row in the table are unrated.
type DuckDBSource struct {
	path     string
	table    string
	maxCells int
}

// NewDuckDBSource creates a source reading table from the database file at
// path. The dense matrix built from the table may hold at most maxCells
// cells; a non-positive maxCells selects DefaultMaxCells.
func NewDuckDBSource(path, table string, maxCells int) *DuckDBSource {
	if table == "" {
		table = DefaultTable
	}
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	return &DuckDBSource{path: path, table: table, maxCells: maxCells}
}

// Name returns "duckdb".
func (s *DuckDBSource) Name() string {
	return "duckdb"
}

// Load reads every (user_idx, item_idx, rating) row and builds a dense matrix
// sized by the largest indices seen.
func (s *DuckDBSource) Load(ctx context.Context) (*Matrix, error) {
	if !identifierPattern.MatchString(s.table) {
		return nil, fmt.Errorf("invalid table name %q", s.table)
	}

	db, err := sql.Open("duckdb", s.path+"?access_mode=read_only")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = db.Close() //nolint:errcheck // read-only connection
	}()

	//nolint:gosec // table name is validated against identifierPattern
	query := fmt.Sprintf("SELECT user_idx, item_idx, rating FROM %s ORDER BY user_idx, item_idx", s.table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query ratings table %s: %w", s.table, err)
	}
	defer func() {
		_ = rows.Close() //nolint:errcheck // result set is drained below
	}()

	type cell struct{ user, item, rating int }
	var cells []cell
	users, items := 0, 0

	for rows.Next() {
		var c cell
		if err := rows.Scan(&c.user, &c.item, &c.rating); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		if c.user < 0 || c.item < 0 {
			return nil, &StructuralError{Row: -1, Reason: fmt.Sprintf("negative index (%d, %d)", c.user, c.item)}
		}
		if c.user >= s.maxCells || c.item >= s.maxCells {
			return nil, s.tooLarge(c.user+1, c.item+1)
		}

		// Rows arrive ordered by (user_idx, item_idx), so duplicates are adjacent.
		if n := len(cells); n > 0 && cells[n-1].user == c.user && cells[n-1].item == c.item {
			return nil, &StructuralError{
				Row:    c.user,
				Reason: fmt.Sprintf("duplicate rating for item %d", c.item),
			}
		}

		users = max(users, c.user+1)
		items = max(items, c.item+1)
		if users*items > s.maxCells {
			return nil, s.tooLarge(users, items)
		}
		cells = append(cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}

	table := make([][]int, users)
	for u := range table {
		table[u] = make([]int, items)
	}
	for _, c := range cells {
		table[c.user][c.item] = c.rating
	}

	return NewMatrix(table)
}

func (s *DuckDBSource) tooLarge(users, items int) error {
	return &StructuralError{
		Row:    -1,
		Reason: fmt.Sprintf("%d users x %d items exceeds the limit of %d cells", users, items, s.maxCells),
	}
}
