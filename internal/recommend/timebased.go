// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package recommend

import (
	"strings"
	"time"
)

// mealBucket maps an hour of day to the meal types it matches.
// Breakfast 06-11, lunch 11-17, dinner 17-22, everything else is the
// snack/late-night bucket.
func mealBucket(hour int) []string {
	switch {
	case hour >= 6 && hour < 11:
		return []string{"breakfast"}
	case hour >= 11 && hour < 17:
		return []string{"lunch"}
	case hour >= 17 && hour < 22:
		return []string{"dinner"}
	default:
		return []string{"snack", "late-night"}
	}
}

// TimeBased suggests foods matching the current meal-type bucket.
// Weekday suggestions are additionally restricted to quick meals below
// the calorie threshold; weekends are not calorie-filtered. Results
// are capped at MaxResults. Meal types match case-insensitively.
func (e *Engine) TimeBased(user string) ([]string, error) {
	if err := requireSession(user); err != nil {
		return nil, err
	}
	now := e.clock()
	defer e.observe("time", now)

	types := mealBucket(now.Hour())
	weekday := now.Weekday() != time.Saturday && now.Weekday() != time.Sunday

	var names []string
	for _, food := range e.catalog.AllFoods() {
		if !matchesMealType(food.MealType, types) {
			continue
		}
		if weekday && food.Calories >= e.cfg.QuickMealCalories {
			continue
		}
		names = append(names, food.Name)
	}

	return capped(names, e.cfg.MaxResults), nil
}

func matchesMealType(mealType string, types []string) bool {
	mt := strings.ToLower(mealType)
	for _, t := range types {
		if mt == t {
			return true
		}
	}
	return false
}
