// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

/*
Package models defines the HTTP API data structures for WishWise.

  - APIResponse: standard response wrapper with status, data, metadata and error
  - HealthStatus, MatrixInfo: service and matrix descriptions
  - UserPredictions, OverallRanking, RankedItem: recommendation payloads

Ranked items carry both the zero-based item index used by the engine and
the 1-based movie number used by the text report.
*/
package models
