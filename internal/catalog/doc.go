// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

// Package catalog owns the canonical set of Food and User entities and
// keeps the five supplementary indexes consistent with it.
//
// A successful AddFood fans out into the relationship graph, the
// nutrition tree, and (when the cuisine is registered) the cuisine
// grouping and recency ledger. The fan-out runs under one exclusive
// lock so partial updates cannot be observed: either an insert happened
// in every index that cares about the entity, or in none.
//
// Reads return value snapshots rather than pointers into catalog state,
// so callers can hold results across later mutations without aliasing.
package catalog
