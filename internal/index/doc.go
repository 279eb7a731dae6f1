// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

// Package index provides the supplementary data structures that give the
// catalog its alternative access paths:
//
//   - Graph: undirected user/food relationship multigraph
//   - NutritionTree: BST over derived nutrition scores
//   - RatingHeap: array-backed max-heap over ratings
//   - Trie: exact-match prefix tree for cuisine names
//   - OfferTree: BST over food names for promoted items
//   - RecencyList: bounded doubly linked list of recent arrivals
//
// The structures are not individually synchronized. A catalog mutation
// fans out across several of them in sequence, so synchronization lives
// one level up: the catalog serializes all access under a single lock,
// making each fan-out observable as one atomic unit.
package index
