// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package ratings

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const referenceCSV = `5,3,0,1
4,0,0,1
1,1,0,5
1,0,0,4
0,1,5,4
`

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delimiter rune
		wantUsers int
		wantItems int
	}{
		{
			name:      "reference table",
			input:     referenceCSV,
			wantUsers: 5,
			wantItems: 4,
		},
		{
			name:      "spaces around fields",
			input:     "1, 2 ,3\n 4,5,6\n",
			wantUsers: 2,
			wantItems: 3,
		},
		{
			name:      "blank lines skipped",
			input:     "1,2\n\n3,4\n\n",
			wantUsers: 2,
			wantItems: 2,
		},
		{
			name:      "semicolon delimiter",
			input:     "1;0\n0;1\n",
			delimiter: ';',
			wantUsers: 2,
			wantItems: 2,
		},
		{
			name:      "no trailing newline",
			input:     "1,2,3",
			wantUsers: 1,
			wantItems: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseCSV(context.Background(), strings.NewReader(tt.input), tt.delimiter)
			if err != nil {
				t.Fatalf("ParseCSV() error = %v", err)
			}
			if m.Users() != tt.wantUsers {
				t.Errorf("Users() = %d, want %d", m.Users(), tt.wantUsers)
			}
			if m.Items() != tt.wantItems {
				t.Errorf("Items() = %d, want %d", m.Items(), tt.wantItems)
			}
		})
	}
}

func TestParseCSV_Values(t *testing.T) {
	m, err := ParseCSV(context.Background(), strings.NewReader(referenceCSV), 0)
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}

	want := [][]int{{5, 3, 0, 1}, {4, 0, 0, 1}, {1, 1, 0, 5}, {1, 0, 0, 4}, {0, 1, 5, 4}}
	for u, row := range want {
		for i, v := range row {
			if got := m.At(u, i); got != v {
				t.Errorf("At(%d, %d) = %d, want %d", u, i, got, v)
			}
		}
	}
}

func TestParseCSV_ParseError(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLine   int
		wantColumn int
		wantField  string
		wantErr    error
	}{
		{
			name:       "word token",
			input:      "1,2,3\n4,x,6\n",
			wantLine:   2,
			wantColumn: 3,
			wantField:  "x",
			wantErr:    strconv.ErrSyntax,
		},
		{
			name:       "decimal token",
			input:      "1.5,2\n",
			wantLine:   1,
			wantColumn: 1,
			wantField:  "1.5",
			wantErr:    strconv.ErrSyntax,
		},
		{
			name:       "empty token",
			input:      "1,,3\n",
			wantLine:   1,
			wantColumn: 3,
			wantField:  "",
			wantErr:    strconv.ErrSyntax,
		},
		{
			name:       "negative rating",
			input:      "1,2\n3,-4\n",
			wantLine:   2,
			wantColumn: 3,
			wantField:  "-4",
			wantErr:    ErrNegativeRating,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(context.Background(), strings.NewReader(tt.input), ',')

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("ParseCSV() error = %v, want *ParseError", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", pe.Line, tt.wantLine)
			}
			if pe.Column != tt.wantColumn {
				t.Errorf("Column = %d, want %d", pe.Column, tt.wantColumn)
			}
			if pe.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", pe.Field, tt.wantField)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("errors.Is(err, %v) = false, err = %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseCSV_RaggedRows(t *testing.T) {
	_, err := ParseCSV(context.Background(), strings.NewReader("1,2,3\n4,5\n"), ',')

	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("ParseCSV() error = %v, want *StructuralError", err)
	}
	if se.Row != 1 || se.Want != 3 || se.Got != 2 {
		t.Errorf("StructuralError = %+v, want row 1 with 2 of 3 columns", se)
	}
}

func TestParseCSV_EmptyInput(t *testing.T) {
	_, err := ParseCSV(context.Background(), strings.NewReader(""), ',')

	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("ParseCSV() error = %v, want *StructuralError", err)
	}
}

func TestParseCSV_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseCSV(ctx, strings.NewReader(referenceCSV), ',')
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ParseCSV() error = %v, want context.Canceled", err)
	}
}

func TestCSVSource_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ratings.csv")
	if err := os.WriteFile(path, []byte(referenceCSV), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	src := NewCSVSource(path, 0)
	if src.Name() != "csv" {
		t.Errorf("Name() = %q, want %q", src.Name(), "csv")
	}

	m, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Users() != 5 || m.Items() != 4 {
		t.Errorf("dims = %dx%d, want 5x4", m.Users(), m.Items())
	}
}

func TestCSVSource_TabDelimited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.tsv")
	if err := os.WriteFile(path, []byte(strings.ReplaceAll(referenceCSV, ",", "\t")), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	m, err := NewCSVSource(path, '\t').Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := m.Row(4); len(got) != 4 || got[2] != 5 {
		t.Errorf("Row(4) = %v, want [0 1 5 4]", got)
	}
}

func TestCSVSource_LoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		src := NewCSVSource(filepath.Join(t.TempDir(), "missing.csv"), ',')
		_, err := src.Load(context.Background())
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Load() error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("parse error carries path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.csv")
		if err := os.WriteFile(path, []byte("1,a\n"), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		_, err := NewCSVSource(path, ',').Load(context.Background())
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("Load() error = %v, want *ParseError", err)
		}
		if pe.Path != path {
			t.Errorf("Path = %q, want %q", pe.Path, path)
		}
		if !strings.Contains(err.Error(), path) {
			t.Errorf("Error() = %q, want it to mention %q", err.Error(), path)
		}
	})
}
