// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package recommend

import (
	"errors"
	"sort"
	"time"
)

// ErrUserOutOfRange is returned when a user index is outside the matrix.
var ErrUserOutOfRange = errors.New("user index out of range")

// Prediction is a predicted rating for one item.
type Prediction struct {
	// Item is the zero-based item (column) index.
	Item int `json:"item"`

	// Score is the predicted rating. It is bounded in practice by the range
	// of observed ratings and is 0 when no neighbor rated the item.
	Score float64 `json:"score"`
}

// RankedList is a list of predictions sorted by descending score.
type RankedList []Prediction

// Items returns the item indices in ranked order.
func (l RankedList) Items() []int {
	items := make([]int, len(l))
	for i, p := range l {
		items[i] = p.Item
	}
	return items
}

// sortRanked orders predictions by descending score, breaking ties by
// ascending item index.
func sortRanked(l RankedList) {
	sort.Slice(l, func(i, j int) bool {
		if l[i].Score != l[j].Score {
			return l[i].Score > l[j].Score
		}
		return l[i].Item < l[j].Item
	})
}

// AggregateEntry accumulates the predictions of one item across users.
type AggregateEntry struct {
	// Sum is the running sum of predicted scores.
	Sum float64 `json:"sum"`

	// Count is the number of users that produced a prediction for the item.
	Count int `json:"count"`
}

// Add folds one prediction into the entry.
func (a *AggregateEntry) Add(score float64) {
	a.Sum += score
	a.Count++
}

// Average returns Sum/Count, or 0 for an empty entry.
func (a AggregateEntry) Average() float64 {
	if a.Count == 0 {
		return 0
	}
	return a.Sum / float64(a.Count)
}

// UserResult holds the predictions produced for one user during a run.
type UserResult struct {
	// User is the zero-based user (row) index.
	User int `json:"user"`

	// Predictions is the full ranked list of unrated items.
	Predictions RankedList `json:"predictions"`

	// Top is the first PerUserN entries of Predictions.
	Top RankedList `json:"top"`
}

// Result is the output of a full run over every user.
type Result struct {
	// Users holds one entry per user, in user order.
	Users []UserResult `json:"users"`

	// Overall is the aggregate ranking truncated to OverallN.
	Overall RankedList `json:"overall"`

	// Stats describes the run.
	Stats RunStats `json:"stats"`
}

// Lists returns every user's full ranked list, in user order.
func (r *Result) Lists() []RankedList {
	lists := make([]RankedList, len(r.Users))
	for i, u := range r.Users {
		lists[i] = u.Predictions
	}
	return lists
}

// RunStats contains timing and size information for a run.
type RunStats struct {
	// Users is the number of users predicted.
	Users int `json:"users"`

	// Items is the number of items in the matrix.
	Items int `json:"items"`

	// Predictions is the total number of predictions emitted.
	Predictions int `json:"predictions"`

	// SimilarityComputations is the number of user-pair similarities computed.
	SimilarityComputations int64 `json:"similarity_computations"`

	// PerUserN and OverallN are the truncation limits used.
	PerUserN int `json:"per_user_n"`
	OverallN int `json:"overall_n"`

	// Workers is the size of the worker pool (1 = sequential).
	Workers int `json:"workers"`

	// DurationMS is the wall time of the run in milliseconds.
	DurationMS int64 `json:"duration_ms"`

	// Timestamp is when the run finished.
	Timestamp time.Time `json:"timestamp"`
}
