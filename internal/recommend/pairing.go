// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package recommend

import "fmt"

// Pairing returns complementary dishes for a chosen main dish: every
// other food sharing its cuisine type or its flavor profile, in
// catalog insertion order. The main dish must exist.
func (e *Engine) Pairing(user, mainDish string) ([]string, error) {
	if err := requireSession(user); err != nil {
		return nil, err
	}
	defer e.observe("pairing", e.clock())

	main, err := e.catalog.FindFood(mainDish)
	if err != nil {
		return nil, fmt.Errorf("pairing for %q: %w", mainDish, err)
	}

	var names []string
	for _, food := range e.catalog.AllFoods() {
		if food.Name == main.Name {
			continue
		}
		if food.Cuisine == main.Cuisine || food.FlavorProfile == main.FlavorProfile {
			names = append(names, food.Name)
		}
	}
	return names, nil
}
