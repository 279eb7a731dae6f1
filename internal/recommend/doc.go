// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

// Package recommend implements the recommendation engine: seven
// deterministic, rule-based strategies over the catalog's indexes.
//
//   - Cuisine-based: top rated dishes of a cuisine (transient max-heap)
//   - New arrivals: the recency ledger, newest first
//   - Personalized: the user's relationship-graph neighborhood, with
//     other-users and time-based fallbacks
//   - Nutrition-based: nutrition-tree range lookup around the user's
//     average ordered score
//   - Popularity: cumulative ordered quantity, top N
//   - Time-based: meal-type buckets by hour, calorie-filtered on
//     weekdays
//   - Pairing: same cuisine or flavor profile as a chosen main dish
//
// Every strategy takes the session username explicitly rather than
// consulting process-wide login state, and fails with
// models.ErrNoActiveSession when it is empty. The engine never mutates
// entity data; mutating operations (orders, ratings, offers) delegate
// to the catalog after session validation.
package recommend
