// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package recommend

import (
	"github.com/tomtom215/forkcast/internal/index"
)

// ByCuisine returns a cuisine's dishes sorted descending by rating.
//
// The rating heap is rebuilt from the cuisine's food list on every call
// (O(n log n) per query) rather than maintained across rating changes;
// simplicity wins over incremental maintenance at catalog scale. An
// unregistered or empty cuisine yields an empty result, not an error.
func (e *Engine) ByCuisine(user, cuisine string) ([]string, error) {
	if err := requireSession(user); err != nil {
		return nil, err
	}
	defer e.observe("cuisine", e.clock())

	if !e.catalog.CuisineRegistered(cuisine) {
		e.logger.Debug().Str("cuisine", cuisine).Msg("cuisine not registered")
		return nil, nil
	}

	foods := e.catalog.FoodsFor(cuisine)
	if len(foods) == 0 {
		return nil, nil
	}

	heap := index.NewRatingHeap()
	for _, f := range foods {
		heap.Push(f.Name, f.Rating)
	}

	names := make([]string, 0, heap.Len())
	for {
		dish, ok := heap.Pop()
		if !ok {
			break
		}
		names = append(names, dish.Name)
	}
	return names, nil
}
