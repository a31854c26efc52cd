// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

// Package report renders a recommendation run for people and programs.
//
// Text produces the console report with 1-based user and movie numbers and
// two-decimal scores. JSON produces a Document with zero-based indices and
// unrounded scores.
package report
