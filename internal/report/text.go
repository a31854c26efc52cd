// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package report

import (
	"bufio"
	"errors"
	"io"
	"strconv"

	"github.com/tomtom215/wishwise/internal/ratings"
	"github.com/tomtom215/wishwise/internal/recommend"
)

// ErrNoResult is returned when a renderer is given a nil matrix or result.
var ErrNoResult = errors.New("report: matrix and result are required")

// formatScore renders a score with two decimals.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}

// oneBased renders a zero-based index for people.
func oneBased(index int) string {
	return strconv.Itoa(index + 1)
}

// Text writes the console report: the ratings matrix, every user's full
// prediction list and top recommendations, then the overall ranking.
// User and movie numbers are 1-based and scores have two decimals.
func Text(w io.Writer, matrix *ratings.Matrix, result *recommend.Result) error {
	if matrix == nil || result == nil {
		return ErrNoResult
	}

	bw := bufio.NewWriter(w)

	writeMatrix(bw, matrix)

	for i := range result.Users {
		writeUser(bw, &result.Users[i], result.Stats.PerUserN)
		bw.WriteString("\n")
	}

	writeOverall(bw, result.Overall, result.Stats.OverallN)

	// bufio.Writer keeps the first write error and reports it here.
	return bw.Flush()
}

// writeMatrix prints one row per user, each rating followed by a space.
func writeMatrix(bw *bufio.Writer, matrix *ratings.Matrix) {
	bw.WriteString("Ratings Matrix:\n")
	for _, row := range matrix.Rows() {
		for _, rating := range row {
			bw.WriteString(strconv.Itoa(rating))
			bw.WriteString(" ")
		}
		bw.WriteString("\n")
	}
}

func writeUser(bw *bufio.Writer, user *recommend.UserResult, topN int) {
	bw.WriteString("Predicted Ratings for User " + oneBased(user.User) + ":\n")
	for _, p := range user.Predictions {
		bw.WriteString("  Movie " + oneBased(p.Item) + " predicted rating: " + formatScore(p.Score) + "\n")
	}

	bw.WriteString("Top " + strconv.Itoa(topN) + " Recommended Movies for User " + oneBased(user.User) + ":\n")
	for _, p := range user.Top {
		bw.WriteString("  Movie " + oneBased(p.Item) + " with predicted rating: " + formatScore(p.Score) + "\n")
	}
}

func writeOverall(bw *bufio.Writer, overall recommend.RankedList, topN int) {
	bw.WriteString("Top " + strconv.Itoa(topN) + " Movies Overall:\n")
	for _, p := range overall {
		bw.WriteString("  Movie " + oneBased(p.Item) + " with average predicted rating: " + formatScore(p.Score) + "\n")
	}
}
