// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package models

import "testing"

func TestFoodSpec_NutritionScore(t *testing.T) {
	tests := []struct {
		name string
		spec FoodSpec
		want float64
	}{
		{
			name: "reference values",
			spec: FoodSpec{
				Calories: 300,
				Proteins: 15,
				Fats:     12,
				Carbs:    30,
				Vitamins: []string{"Vitamin A", "Calcium"},
				Minerals: []string{"Iron"},
			},
			// 15*4 + 12*9 + 30*4 - 300*0.1 + 2*2 + 1.5*1
			want: 263.5,
		},
		{
			name: "zero spec",
			spec: FoodSpec{},
			want: 0,
		},
		{
			name: "micronutrients count not content",
			spec: FoodSpec{
				Vitamins: []string{"B12", "C", "D"},
				Minerals: []string{"Zinc", "Magnesium"},
			},
			want: 9, // 3*2 + 2*1.5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.spec.NutritionScore()
			if got != tt.want {
				t.Errorf("NutritionScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandle_String(t *testing.T) {
	if got := UserHandle("alice").String(); got != "user/alice" {
		t.Errorf("UserHandle String = %q, want user/alice", got)
	}
	if got := FoodHandle("Tacos").String(); got != "food/Tacos" {
		t.Errorf("FoodHandle String = %q, want food/Tacos", got)
	}
	if UserHandle("x") == FoodHandle("x") {
		t.Error("user and food handles with the same name must differ")
	}
}
