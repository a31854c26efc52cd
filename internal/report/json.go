// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wishwise/internal/ratings"
	"github.com/tomtom215/wishwise/internal/recommend"
)

// MatrixSummary describes the ratings matrix in a JSON report.
type MatrixSummary struct {
	Users   int     `json:"users"`
	Items   int     `json:"items"`
	Density float64 `json:"density"`
	Rows    [][]int `json:"rows"`
}

// Document is the JSON report. Indices are zero-based and scores are not
// rounded.
type Document struct {
	Matrix  MatrixSummary          `json:"matrix"`
	Users   []recommend.UserResult `json:"users"`
	Overall recommend.RankedList   `json:"overall"`
	Stats   recommend.RunStats     `json:"stats"`
}

// NewDocument assembles the JSON report for a run.
func NewDocument(matrix *ratings.Matrix, result *recommend.Result) *Document {
	return &Document{
		Matrix: MatrixSummary{
			Users:   matrix.Users(),
			Items:   matrix.Items(),
			Density: matrix.Density(),
			Rows:    matrix.Rows(),
		},
		Users:   result.Users,
		Overall: result.Overall,
		Stats:   result.Stats,
	}
}

// JSON writes the run as an indented JSON document.
func JSON(w io.Writer, matrix *ratings.Matrix, result *recommend.Result) error {
	if matrix == nil || result == nil {
		return ErrNoResult
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(matrix, result)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
