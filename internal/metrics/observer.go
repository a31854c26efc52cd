// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package metrics

import (
	"time"

	"github.com/tomtom215/wishwise/internal/recommend"
)

// RecommendObserver feeds recommendation engine activity into the
// Prometheus collectors. Install it with Engine.SetObserver.
type RecommendObserver struct{}

// NewRecommendObserver creates an observer backed by the package collectors.
func NewRecommendObserver() *RecommendObserver {
	return &RecommendObserver{}
}

// ObservePrediction implements recommend.Observer.
func (o *RecommendObserver) ObservePrediction(_ int, predictions int, duration time.Duration) {
	PredictionsTotal.Add(float64(predictions))
	PredictionDuration.Observe(duration.Seconds())
}

// ObserveSimilarities implements recommend.Observer.
func (o *RecommendObserver) ObserveSimilarities(count int) {
	SimilarityComputations.Add(float64(count))
}

// ObserveRun implements recommend.Observer.
func (o *RecommendObserver) ObserveRun(stats recommend.RunStats, err error) {
	RunDuration.Observe(float64(stats.DurationMS) / 1000)
	if err != nil {
		RunsTotal.WithLabelValues("error").Inc()
		return
	}
	RunsTotal.WithLabelValues("success").Inc()
	RunLastSuccess.Set(float64(stats.Timestamp.Unix()))
}

var _ recommend.Observer = (*RecommendObserver)(nil)
