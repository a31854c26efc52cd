// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package recommend

// TopN returns the first n entries of a ranked list.
//
// The result has length min(n, len(list)); n <= 0 yields an empty list. The
// input is not modified and the result does not alias it.
func TopN(list RankedList, n int) RankedList {
	if n <= 0 {
		return RankedList{}
	}
	if n > len(list) {
		n = len(list)
	}
	out := make(RankedList, n)
	copy(out, list[:n])
	return out
}

// Aggregate folds every user's predictions into per-item sums and counts.
//
// An item appears in the result only if at least one user received a
// prediction for it. Users that rated an item contribute nothing to it; there
// is no zero imputation.
func Aggregate(lists []RankedList) map[int]*AggregateEntry {
	agg := make(map[int]*AggregateEntry)
	for _, list := range lists {
		for _, p := range list {
			entry, ok := agg[p.Item]
			if !ok {
				entry = &AggregateEntry{}
				agg[p.Item] = entry
			}
			entry.Add(p.Score)
		}
	}
	return agg
}

// AggregateTopN ranks items by their mean predicted score across users and
// returns the first n.
//
// Equal averages are ordered by ascending item index. n <= 0 yields an empty
// list.
func AggregateTopN(lists []RankedList, n int) RankedList {
	agg := Aggregate(lists)

	ranked := make(RankedList, 0, len(agg))
	for item, entry := range agg {
		ranked = append(ranked, Prediction{Item: item, Score: entry.Average()})
	}
	sortRanked(ranked)

	return TopN(ranked, n)
}
