// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package recommend

import "fmt"

// Config holds the tunable parameters of the recommendation engine.
type Config struct {
	// NutritionTolerance is the half-width of the nutrition-score
	// window used by nutrition-based recommendations.
	NutritionTolerance float64 `koanf:"nutrition_tolerance"`

	// MaxResults caps personalized, popularity, and time-based result
	// lists.
	MaxResults int `koanf:"max_results"`

	// QuickMealCalories is the weekday calorie ceiling for time-based
	// suggestions. Weekend suggestions are not calorie-filtered.
	QuickMealCalories int `koanf:"quick_meal_calories"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *Config {
	return &Config{
		NutritionTolerance: 15,
		MaxResults:         5,
		QuickMealCalories:  500,
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.NutritionTolerance <= 0 {
		return fmt.Errorf("nutrition_tolerance must be positive, got %v", c.NutritionTolerance)
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("max_results must be positive, got %d", c.MaxResults)
	}
	if c.QuickMealCalories <= 0 {
		return fmt.Errorf("quick_meal_calories must be positive, got %d", c.QuickMealCalories)
	}
	return nil
}
