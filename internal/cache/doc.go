// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

// Package cache provides a bounded, thread-safe LRU cache.
//
// The API uses it to memoize per-user predictions. The ratings matrix is
// immutable for the life of the process, so entries never go stale and
// only capacity bounds the cache.
package cache
