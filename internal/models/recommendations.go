// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package models

import (
	"time"

	"github.com/tomtom215/wishwise/internal/cache"
	"github.com/tomtom215/wishwise/internal/recommend"
)

// HealthStatus represents the health check response
type HealthStatus struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Users     int               `json:"users"`
	Items     int               `json:"items"`
	LastRunAt time.Time         `json:"last_run_at,omitempty"`
	Uptime    float64           `json:"uptime_seconds"`
	Engine    recommend.Metrics `json:"engine"`

	// PredictionCache is nil when the prediction cache is disabled.
	PredictionCache *cache.Stats `json:"prediction_cache,omitempty"`
}

// MatrixInfo describes the loaded ratings matrix.
type MatrixInfo struct {
	Users   int     `json:"users"`
	Items   int     `json:"items"`
	Density float64 `json:"density"`
	Rated   int     `json:"rated"`
}

// RankedItem is one prediction in an API response. Item is the zero-based
// column index and Movie the 1-based number used in reports.
type RankedItem struct {
	Item  int     `json:"item"`
	Movie int     `json:"movie"`
	Score float64 `json:"score"`
}

// UserPredictions is the response for a user's predictions.
type UserPredictions struct {
	User        int          `json:"user"`
	N           int          `json:"n"`
	Predictions []RankedItem `json:"predictions"`
	Top         []RankedItem `json:"top"`
}

// OverallRanking is the response for the aggregate ranking.
type OverallRanking struct {
	N     int          `json:"n"`
	Items []RankedItem `json:"items"`
}

// NewRankedItems converts an engine ranking to API items. The result is
// never nil so it encodes as [] rather than null.
func NewRankedItems(list recommend.RankedList) []RankedItem {
	items := make([]RankedItem, len(list))
	for i, p := range list {
		items[i] = RankedItem{Item: p.Item, Movie: p.Item + 1, Score: p.Score}
	}
	return items
}
