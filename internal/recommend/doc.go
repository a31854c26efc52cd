// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

// Package recommend implements user-based collaborative filtering over a
// dense ratings matrix.
//
// # Pipeline
//
// The engine predicts a score for every item a user has not rated, ranks the
// predictions, and aggregates all users' predictions into an overall ranking:
//
//   - Similarity: cosine over full rating vectors, zeros included (Cosine)
//   - Prediction: similarity-weighted average of neighbors' ratings (Engine.Predict)
//   - Per-user ranking: descending score, truncated to N (TopN)
//   - Overall ranking: per-item mean of all predictions, truncated to N (AggregateTopN)
//
// For a target user u and unrated item i:
//
//	score(u, i) = sum_{v != u, r(v,i) != 0} sim(u, v) * r(v, i) / sum |sim(u, v)|
//
// An item with no rating neighbors scores 0 and is still emitted.
//
// # Ordering
//
// Rankings are sorted by descending score. Equal scores are ordered by
// ascending item index, in both per-user and overall rankings.
//
// # Usage
//
//	engine, err := recommend.NewEngine(matrix, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	result, err := engine.Run(ctx)
//
// # Thread Safety
//
// The engine only reads the immutable ratings matrix, so Predict may be
// called concurrently. PredictAll fans users out over a bounded worker pool
// when Parallel.Workers is greater than one; the output is identical to the
// sequential run.
package recommend
