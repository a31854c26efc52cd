// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package ratings

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultDelimiter separates ratings on a line.
const DefaultDelimiter = ','

// CSVSource loads a ratings matrix from a delimited text file.
type CSVSource struct {
	path      string
	delimiter rune
}

// NewCSVSource creates a source for the file at path. A zero delimiter
// selects DefaultDelimiter.
func NewCSVSource(path string, delimiter rune) *CSVSource {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &CSVSource{path: path, delimiter: delimiter}
}

// Name returns "csv".
func (s *CSVSource) Name() string {
	return "csv"
}

// Load opens the file and parses it with ParseCSV.
func (s *CSVSource) Load(ctx context.Context) (*Matrix, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open ratings file: %w", err)
	}
	defer func() {
		_ = f.Close() //nolint:errcheck // read-only file
	}()

	m, err := parseCSV(ctx, f, s.delimiter, s.path)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ParseCSV reads a ratings table from r. Blank lines are skipped and fields
// are trimmed of surrounding spaces before conversion.
func ParseCSV(ctx context.Context, r io.Reader, delimiter rune) (*Matrix, error) {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return parseCSV(ctx, r, delimiter, "")
}

func parseCSV(ctx context.Context, r io.Reader, delimiter rune, path string) (*Matrix, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // row widths are checked by NewMatrix
	reader.TrimLeadingSpace = true

	var rows [][]int
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read ratings table: %w", err)
		}

		row := make([]int, len(record))
		for col, field := range record {
			v, err := parseRating(field)
			if err != nil {
				line, column := reader.FieldPos(col)
				return nil, &ParseError{
					Path:   path,
					Line:   line,
					Column: column,
					Field:  field,
					Err:    err,
				}
			}
			row[col] = v
		}
		rows = append(rows, row)
	}

	return NewMatrix(rows)
}

func parseRating(field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, ErrNegativeRating
	}
	return v, nil
}
