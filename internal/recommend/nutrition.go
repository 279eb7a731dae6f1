// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package recommend

// ByNutrition recommends foods whose nutrition score is close to the
// average score of the session user's ordered foods.
//
// The average is taken over the user's graph neighborhood including
// repeat orders, so frequently reordered foods weigh more. A user with
// no orders gets an empty result. The window half-width is
// NutritionTolerance; results come back ascending by score from the
// nutrition tree's in-order walk.
func (e *Engine) ByNutrition(user string) ([]string, error) {
	if err := requireSession(user); err != nil {
		return nil, err
	}
	defer e.observe("nutrition", e.clock())

	ordered := e.catalog.OrderedFoodNames(user)
	if len(ordered) == 0 {
		e.logger.Debug().Str("user", user).Msg("no orders to average nutrition over")
		return nil, nil
	}

	var total float64
	for _, name := range ordered {
		food, err := e.catalog.FindFood(name)
		if err != nil {
			// Graph edges only exist for catalog foods.
			continue
		}
		total += food.NutritionScore
	}
	avg := total / float64(len(ordered))

	return e.catalog.NutritionRange(avg, e.cfg.NutritionTolerance), nil
}

// NearestByScore returns the food whose nutrition score matches the
// query exactly, or the best lower-score candidate under the nutrition
// tree's asymmetric descent. The second return is false when no
// candidate exists.
func (e *Engine) NearestByScore(user string, score float64) (string, bool, error) {
	if err := requireSession(user); err != nil {
		return "", false, err
	}
	name, ok := e.catalog.NutritionNearest(score)
	return name, ok, nil
}
