// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package recommend

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/forkcast/internal/models"
)

func TestEngine_ByCuisine(t *testing.T) {
	eng, cat := newTestEngine(t, tuesdayNoon)
	addUser(t, cat, "alice")
	cat.RegisterCuisine("Chinese")

	addFood(t, cat, models.FoodSpec{Name: "Kung Pao Chicken", Cuisine: "Chinese"})
	addFood(t, cat, models.FoodSpec{Name: "Sweet and Sour Tofu", Cuisine: "Chinese"})
	addFood(t, cat, models.FoodSpec{Name: "Dumplings", Cuisine: "Chinese"})

	cat.RateDish("alice", "Chinese", "Kung Pao Chicken", 3)
	cat.RateDish("alice", "Chinese", "Sweet and Sour Tofu", 5)
	cat.RateDish("alice", "Chinese", "Dumplings", 1)

	got, err := eng.ByCuisine("alice", "Chinese")
	if err != nil {
		t.Fatalf("ByCuisine failed: %v", err)
	}
	want := []string{"Sweet and Sour Tofu", "Kung Pao Chicken", "Dumplings"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ByCuisine = %v, want %v", got, want)
	}
}

func TestEngine_ByCuisine_UnknownOrEmpty(t *testing.T) {
	eng, cat := newTestEngine(t, tuesdayNoon)
	addUser(t, cat, "alice")
	cat.RegisterCuisine("Italian")

	if got, err := eng.ByCuisine("alice", "Martian"); err != nil || len(got) != 0 {
		t.Errorf("unknown cuisine = (%v, %v), want empty result and nil error", got, err)
	}
	if got, err := eng.ByCuisine("alice", "Italian"); err != nil || len(got) != 0 {
		t.Errorf("empty cuisine = (%v, %v), want empty result and nil error", got, err)
	}
}

func TestEngine_Personalized_FirstSeenOrder(t *testing.T) {
	eng, cat := newTestEngine(t, tuesdayNoon)
	addUser(t, cat, "alice")
	cat.RegisterCuisine("Mexican")
	addFood(t, cat, models.FoodSpec{Name: "A", Cuisine: "Mexican"})
	addFood(t, cat, models.FoodSpec{Name: "B", Cuisine: "Mexican"})

	eng.OrderFood("alice", "A", 1)
	eng.OrderFood("alice", "B", 1)
	eng.OrderFood("alice", "A", 1) // repeat order must not duplicate

	got, err := eng.Personalized("alice")
	if err != nil {
		t.Fatalf("Personalized failed: %v", err)
	}
	want := []string{"A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Personalized = %v, want %v", got, want)
	}
}

func TestEngine_Personalized_FallbackToOtherUsers(t *testing.T) {
	eng, cat := newTestEngine(t, tuesdayNoon)
	addUser(t, cat, "alice")
	addUser(t, cat, "bob")
	cat.RegisterCuisine("Mexican")
	addFood(t, cat, models.FoodSpec{Name: "Tacos", Cuisine: "Mexican"})

	eng.OrderFood("bob", "Tacos", 1)

	got, err := eng.Personalized("alice")
	if err != nil {
		t.Fatalf("Personalized failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Tacos"}) {
		t.Errorf("Personalized fallback = %v, want [Tacos]", got)
	}
}

func TestEngine_Personalized_FallbackToTimeBased(t *testing.T) {
	eng, cat := newTestEngine(t, tuesdayNoon)
	addUser(t, cat, "alice")
	cat.RegisterCuisine("Italian")
	addFood(t, cat, models.FoodSpec{Name: "Panini", Cuisine: "Italian", MealType: "lunch", Calories: 350})

	// Nobody has ordered anything; noon on a weekday falls through to
	// lunch-bucket time-based suggestions.
	got, err := eng.Personalized("alice")
	if err != nil {
		t.Fatalf("Personalized failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Panini"}) {
		t.Errorf("Personalized cold-start = %v, want [Panini]", got)
	}
}

func TestEngine_Personalized_Cap(t *testing.T) {
	eng, cat := newTestEngine(t, tuesdayNoon)
	addUser(t, cat, "alice")
	cat.RegisterCuisine("Mexican")
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		addFood(t, cat, models.FoodSpec{Name: name, Cuisine: "Mexican"})
		eng.OrderFood("alice", name, 1)
	}

	got, _ := eng.Personalized("alice")
	if len(got) != 5 {
		t.Errorf("Personalized returned %d results, want cap of 5", len(got))
	}
}

func TestEngine_ByNutrition(t *testing.T) {
	eng, cat := newTestEngine(t, tuesdayNoon)
	addUser(t, cat, "alice")
	cat.RegisterCuisine("Test")

	// Spec carbs chosen so scores are carbs*4: 40, 80, 120, 200.
	for _, f := range []struct {
		name  string
		carbs float64
	}{
		{"low", 10}, {"mid", 20}, {"high", 30}, {"extreme", 50},
	} {
		addFood(t, cat, models.FoodSpec{Name: f.name, Cuisine: "Test", Carbs: f.carbs})
	}

	// Orders of low(40) and high(120) average to 80; the +-15 window
	// captures only mid(80).
	eng.OrderFood("alice", "low", 1)
	eng.OrderFood("alice", "high", 1)

	got, err := eng.ByNutrition("alice")
	if err != nil {
		t.Fatalf("ByNutrition failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"mid"}) {
		t.Errorf("ByNutrition = %v, want [mid]", got)
	}
}

func TestEngine_ByNutrition_NoOrders(t *testing.T) {
	eng, cat := newTestEngine(t, tuesdayNoon)
	addUser(t, cat, "alice")

	got, err := eng.ByNutrition("alice")
	if err != nil {
		t.Fatalf("ByNutrition failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ByNutrition with no orders = %v, want empty", got)
	}
}

func TestEngine_NearestByScore(t *testing.T) {
	eng, cat := newTestEngine(t, tuesdayNoon)
	addUser(t, cat, "alice")
	cat.RegisterCuisine("Test")
	for _, f := range []struct {
		name  string
		carbs float64
	}{
		{"ten", 2.5}, {"twenty", 5}, {"thirty", 7.5},
	} {
		addFood(t, cat, models.FoodSpec{Name: f.name, Cuisine: "Test", Carbs: f.carbs})
	}

	name, ok, err := eng.NearestByScore("alice", 20)
	if err != nil || !ok || name != "twenty" {
		t.Errorf("NearestByScore(20) = (%q, %v, %v), want exact twenty", name, ok, err)
	}

	name, ok, err = eng.NearestByScore("alice", 15)
	if err != nil || !ok || name != "ten" {
		t.Errorf("NearestByScore(15) = (%q, %v, %v), want lower candidate ten", name, ok, err)
	}
}

func TestEngine_Popular(t *testing.T) {
	eng, cat := newTestEngine(t, tuesdayNoon)
	addUser(t, cat, "alice")
	cat.RegisterCuisine("Mexican")
	for _, name := range []string{"X", "Y", "Z"} {
		addFood(t, cat, models.FoodSpec{Name: name, Cuisine: "Mexican"})
	}

	// X ordered 3 then 2 accumulates to 5.
	eng.OrderFood("alice", "X", 3)
	eng.OrderFood("alice", "X", 2)
	eng.OrderFood("alice", "Y", 4)
	eng.OrderFood("alice", "Z", 1)

	got, err := eng.Popular("alice")
	if err != nil {
		t.Fatalf("Popular failed: %v", err)
	}
	want := []string{"X", "Y", "Z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Popular = %v, want %v", got, want)
	}
}

func TestEngine_Popular_StableTies(t *testing.T) {
	eng, cat := newTestEngine(t, tuesdayNoon)
	addUser(t, cat, "alice")
	cat.RegisterCuisine("Mexican")
	for _, name := range []string{"B", "A", "C"} {
		addFood(t, cat, models.FoodSpec{Name: name, Cuisine: "Mexican"})
		eng.OrderFood("alice", name, 2)
	}

	first, _ := eng.Popular("alice")
	second, _ := eng.Popular("alice")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Popular tie order unstable: %v then %v", first, second)
	}
}

func TestEngine_TimeBased(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want []string
	}{
		{
			name: "weekday breakfast filters calories",
			at:   time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC), // Tuesday
			want: []string{"Light Pancakes"},
		},
		{
			name: "weekend breakfast keeps heavy meals",
			at:   time.Date(2026, time.March, 7, 8, 0, 0, 0, time.UTC), // Saturday
			want: []string{"Light Pancakes", "Big Breakfast"},
		},
		{
			name: "weekday dinner",
			at:   time.Date(2026, time.March, 3, 19, 0, 0, 0, time.UTC),
			want: []string{"Stir Fry"},
		},
		{
			name: "late night matches snack and late-night types",
			at:   time.Date(2026, time.March, 7, 23, 0, 0, 0, time.UTC), // Saturday
			want: []string{"Chips", "Midnight Pizza"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, cat := newTestEngine(t, tt.at)
			addUser(t, cat, "alice")
			cat.RegisterCuisine("American")

			addFood(t, cat, models.FoodSpec{Name: "Light Pancakes", Cuisine: "American", MealType: "Breakfast", Calories: 250})
			addFood(t, cat, models.FoodSpec{Name: "Big Breakfast", Cuisine: "American", MealType: "breakfast", Calories: 900})
			addFood(t, cat, models.FoodSpec{Name: "Stir Fry", Cuisine: "American", MealType: "dinner", Calories: 400})
			addFood(t, cat, models.FoodSpec{Name: "Chips", Cuisine: "American", MealType: "snack", Calories: 200})
			addFood(t, cat, models.FoodSpec{Name: "Midnight Pizza", Cuisine: "American", MealType: "late-night", Calories: 450})

			got, err := eng.TimeBased("alice")
			if err != nil {
				t.Fatalf("TimeBased failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TimeBased = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine_Pairing(t *testing.T) {
	eng, cat := newTestEngine(t, tuesdayNoon)
	addUser(t, cat, "alice")
	cat.RegisterCuisine("Italian")
	cat.RegisterCuisine("Indian")

	addFood(t, cat, models.FoodSpec{Name: "Margherita Pizza", Cuisine: "Italian", FlavorProfile: "Cheesy"})
	addFood(t, cat, models.FoodSpec{Name: "Pasta", Cuisine: "Italian", FlavorProfile: "Herbal"})
	addFood(t, cat, models.FoodSpec{Name: "Cheesy Naan", Cuisine: "Indian", FlavorProfile: "Cheesy"})
	addFood(t, cat, models.FoodSpec{Name: "Vindaloo", Cuisine: "Indian", FlavorProfile: "Spicy"})

	got, err := eng.Pairing("alice", "Margherita Pizza")
	if err != nil {
		t.Fatalf("Pairing failed: %v", err)
	}
	// Same cuisine (Pasta) or same flavor profile (Cheesy Naan).
	want := []string{"Pasta", "Cheesy Naan"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Pairing = %v, want %v", got, want)
	}

	if _, err := eng.Pairing("alice", "Ghost Dish"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Pairing unknown dish err = %v, want ErrNotFound", err)
	}
}
