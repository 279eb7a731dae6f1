// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package recommend

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/forkcast/internal/catalog"
	"github.com/tomtom215/forkcast/internal/models"
)

// tuesdayNoon is a fixed weekday lunch hour used as the default test
// clock: 2026-03-03 was a Tuesday.
var tuesdayNoon = time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, at time.Time) (*Engine, *catalog.Catalog) {
	t.Helper()

	cat := catalog.New(5, zerolog.Nop())
	eng, err := NewEngine(DefaultConfig(), cat, zerolog.Nop(), WithClock(func() time.Time { return at }))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return eng, cat
}

func addFood(t *testing.T, cat *catalog.Catalog, spec models.FoodSpec) {
	t.Helper()
	if _, _, err := cat.AddFood(spec); err != nil {
		t.Fatalf("AddFood(%s) failed: %v", spec.Name, err)
	}
}

func addUser(t *testing.T, cat *catalog.Catalog, name string) {
	t.Helper()
	if _, err := cat.AddUser(models.UserSpec{Name: name}, []byte("hash")); err != nil {
		t.Fatalf("AddUser(%s) failed: %v", name, err)
	}
}

func TestEngine_SessionRequired(t *testing.T) {
	eng, _ := newTestEngine(t, tuesdayNoon)

	calls := map[string]func() error{
		"ByCuisine":    func() error { _, err := eng.ByCuisine("", "Italian"); return err },
		"NewArrivals":  func() error { _, err := eng.NewArrivals(""); return err },
		"Personalized": func() error { _, err := eng.Personalized(""); return err },
		"ByNutrition":  func() error { _, err := eng.ByNutrition(""); return err },
		"Popular":      func() error { _, err := eng.Popular(""); return err },
		"TimeBased":    func() error { _, err := eng.TimeBased(""); return err },
		"Pairing":      func() error { _, err := eng.Pairing("", "Tacos"); return err },
		"Offers":       func() error { _, err := eng.Offers(""); return err },
		"OrderFood":    func() error { return eng.OrderFood("", "Tacos", 1) },
		"RateDish":     func() error { return eng.RateDish("", "Mexican", "Tacos", 5) },
	}

	for name, call := range calls {
		if err := call(); !errors.Is(err, models.ErrNoActiveSession) {
			t.Errorf("%s without session: err = %v, want ErrNoActiveSession", name, err)
		}
	}
}

func TestEngine_InvalidConfig(t *testing.T) {
	cat := catalog.New(5, zerolog.Nop())
	if _, err := NewEngine(&Config{}, cat, zerolog.Nop()); err == nil {
		t.Error("NewEngine with zero config must fail validation")
	}
}

func TestEngine_NewArrivals(t *testing.T) {
	eng, cat := newTestEngine(t, tuesdayNoon)
	addUser(t, cat, "alice")
	cat.RegisterCuisine("Italian")
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		addFood(t, cat, models.FoodSpec{Name: name, Cuisine: "Italian", MealType: "lunch"})
	}

	got, err := eng.NewArrivals("alice")
	if err != nil {
		t.Fatalf("NewArrivals failed: %v", err)
	}
	want := []string{"F", "E", "D", "C", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NewArrivals = %v, want %v", got, want)
		}
	}
}

func TestEngine_Offers(t *testing.T) {
	eng, cat := newTestEngine(t, tuesdayNoon)
	addUser(t, cat, "alice")
	cat.RegisterCuisine("Mexican")
	addFood(t, cat, models.FoodSpec{Name: "Tacos", Cuisine: "Mexican"})
	addFood(t, cat, models.FoodSpec{Name: "Burrito", Cuisine: "Mexican"})

	if err := eng.AddOffer("Tacos", "Buy one get one free"); err != nil {
		t.Fatalf("AddOffer failed: %v", err)
	}
	if err := eng.AddOffer("Burrito", "Free drink"); err != nil {
		t.Fatalf("AddOffer failed: %v", err)
	}
	if err := eng.AddOffer("Ghost", "x"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("AddOffer unknown food err = %v, want ErrNotFound", err)
	}

	items, err := eng.Offers("alice")
	if err != nil {
		t.Fatalf("Offers failed: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Burrito" || items[1].Name != "Tacos" {
		t.Errorf("Offers = %+v, want name-ascending Burrito, Tacos", items)
	}
	if items[1].Promotion != "Buy one get one free" {
		t.Errorf("promotion text = %q", items[1].Promotion)
	}
}

func TestEngine_OrderFood(t *testing.T) {
	eng, cat := newTestEngine(t, tuesdayNoon)
	addUser(t, cat, "alice")
	cat.RegisterCuisine("Mexican")
	addFood(t, cat, models.FoodSpec{Name: "Tacos", Cuisine: "Mexican"})

	if err := eng.OrderFood("alice", "Tacos", 2); err != nil {
		t.Fatalf("OrderFood failed: %v", err)
	}
	if err := eng.OrderFood("alice", "Nachos", 1); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("OrderFood unknown food err = %v, want ErrNotFound", err)
	}
}
