// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package api

// UserPredictionsRequest holds the parameters of
// GET /api/v1/users/{user}/predictions.
type UserPredictionsRequest struct {
	// User is 1-based, like the text report.
	User int `query:"user" validate:"gte=1"`
	N    int `query:"n" validate:"gte=0,lte=10000"`
}

// OverallRequest holds the parameters of GET /api/v1/recommendations/overall.
type OverallRequest struct {
	N int `query:"n" validate:"gte=0,lte=10000"`
}
