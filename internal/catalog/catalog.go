// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package catalog

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/forkcast/internal/index"
	"github.com/tomtom215/forkcast/internal/models"
)

// Catalog is the authoritative entity store. It enforces name
// uniqueness for foods and users and propagates every mutation into the
// indexes that derive from it.
//
// All methods are safe for concurrent use; a single RWMutex serializes
// mutations so the multi-index fan-out of an insert is atomic from the
// caller's perspective.
type Catalog struct {
	mu sync.RWMutex

	foods     map[string]*models.Food
	foodOrder []string
	users     map[string]*models.User
	userOrder []string

	graph     *index.Graph[models.Handle]
	nutrition *index.NutritionTree

	cuisineTrie  *index.Trie
	cuisineFoods map[string][]string

	recency *index.RecencyList
	offers  *index.OfferTree

	// popularity maps food name to cumulative ordered quantity.
	popularity map[string]int

	logger zerolog.Logger
}

// New creates an empty catalog. recencyCapacity bounds the new-arrivals
// ledger; non-positive values use the default of 5.
func New(recencyCapacity int, logger zerolog.Logger) *Catalog {
	return &Catalog{
		foods:        make(map[string]*models.Food),
		users:        make(map[string]*models.User),
		graph:        index.NewGraph[models.Handle](),
		nutrition:    index.NewNutritionTree(),
		cuisineTrie:  index.NewTrie(),
		cuisineFoods: make(map[string][]string),
		recency:      index.NewRecencyList(recencyCapacity),
		offers:       index.NewOfferTree(),
		popularity:   make(map[string]int),
		logger:       logger.With().Str("component", "catalog").Logger(),
	}
}

// RegisterCuisine adds a cuisine to the registry trie and initializes
// its empty food list. Returns false if it was already registered.
// Cuisines are never auto-registered by food insertion.
func (c *Catalog) RegisterCuisine(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cuisineTrie.Insert(name) {
		return false
	}
	c.cuisineFoods[name] = nil
	c.logger.Info().Str("cuisine", name).Msg("cuisine registered")
	return true
}

// CuisineRegistered reports whether the exact cuisine string was
// registered.
func (c *Catalog) CuisineRegistered(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cuisineTrie.Contains(name)
}

// AddFood creates a food from the spec and registers it with every
// index. The second return reports whether the food's cuisine was
// registered: foods with an unknown cuisine are still stored in the
// catalog, graph, and nutrition tree but stay out of cuisine-scoped
// and recency recommendations. That condition is a warning for the
// caller, not an error.
func (c *Catalog) AddFood(spec models.FoodSpec) (models.Food, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.foods[spec.Name]; exists {
		return models.Food{}, false, fmt.Errorf("add food %q: %w", spec.Name, models.ErrDuplicateEntity)
	}

	food := &models.Food{
		Name:                spec.Name,
		Cuisine:             spec.Cuisine,
		Calories:            spec.Calories,
		NutritionScore:      spec.NutritionScore(),
		DietaryRestrictions: spec.DietaryRestrictions,
		Allergens:           spec.Allergens,
		MealType:            spec.MealType,
		FlavorProfile:       spec.FlavorProfile,
	}

	cuisineKnown := c.cuisineTrie.Contains(spec.Cuisine)
	if cuisineKnown {
		food.ArrivalSeq = len(c.cuisineFoods[spec.Cuisine])
		c.cuisineFoods[spec.Cuisine] = append(c.cuisineFoods[spec.Cuisine], food.Name)
		c.recency.Append(food.Name)
	} else {
		c.logger.Warn().
			Str("food", spec.Name).
			Str("cuisine", spec.Cuisine).
			Msg("cuisine not registered; food excluded from cuisine-based recommendations")
	}

	c.foods[food.Name] = food
	c.foodOrder = append(c.foodOrder, food.Name)
	c.graph.AddVertex(food.Handle())
	c.nutrition.Insert(food.Name, food.NutritionScore)

	c.logger.Info().
		Str("food", food.Name).
		Str("cuisine", food.Cuisine).
		Float64("nutrition_score", food.NutritionScore).
		Msg("food added")

	return *food, cuisineKnown, nil
}

// AddUser creates a user from the spec. credentialHash is the bcrypt
// hash of the user's credential, produced by the session layer; the
// catalog never sees plaintext.
func (c *Catalog) AddUser(spec models.UserSpec, credentialHash []byte) (models.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.users[spec.Name]; exists {
		return models.User{}, fmt.Errorf("add user %q: %w", spec.Name, models.ErrDuplicateEntity)
	}

	user := &models.User{
		Name:            spec.Name,
		CredentialHash:  credentialHash,
		Address:         spec.Address,
		FavoriteCuisine: spec.FavoriteCuisine,
		DietaryPref:     spec.DietaryPref,
		Allergens:       spec.Allergens,
		Ratings:         make(map[string]int),
	}

	c.users[user.Name] = user
	c.userOrder = append(c.userOrder, user.Name)
	c.graph.AddVertex(user.Handle())

	c.logger.Info().Str("user", user.Name).Msg("user added")

	return *user, nil
}

// FindFood returns a snapshot of the named food.
func (c *Catalog) FindFood(name string) (models.Food, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	food, ok := c.foods[name]
	if !ok {
		return models.Food{}, fmt.Errorf("find food %q: %w", name, models.ErrNotFound)
	}
	return *food, nil
}

// FindUser returns a snapshot of the named user.
func (c *Catalog) FindUser(name string) (models.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	user, ok := c.users[name]
	if !ok {
		return models.User{}, fmt.Errorf("find user %q: %w", name, models.ErrNotFound)
	}
	return *user, nil
}

// CredentialHash returns the stored credential hash for a user.
func (c *Catalog) CredentialHash(name string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	user, ok := c.users[name]
	if !ok {
		return nil, fmt.Errorf("credential for %q: %w", name, models.ErrUnknownUser)
	}
	return user.CredentialHash, nil
}

// UpdateDietaryPreferences replaces a user's dietary preference and
// allergen set. These are the only mutable user profile fields.
func (c *Catalog) UpdateDietaryPreferences(name, dietaryPref string, allergens []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	user, ok := c.users[name]
	if !ok {
		return fmt.Errorf("update preferences for %q: %w", name, models.ErrNotFound)
	}
	user.DietaryPref = dietaryPref
	user.Allergens = allergens
	return nil
}

// RecordOrder links a user to a food in the relationship graph, appends
// to the user's order history, and bumps the food's popularity count by
// the ordered quantity. Reordering the same food adds another edge.
func (c *Catalog) RecordOrder(userName, foodName string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	user, ok := c.users[userName]
	if !ok {
		return fmt.Errorf("order by %q: %w", userName, models.ErrNotFound)
	}
	food, ok := c.foods[foodName]
	if !ok {
		return fmt.Errorf("order food %q: %w", foodName, models.ErrNotFound)
	}

	c.graph.AddEdge(user.Handle(), food.Handle())
	user.OrderHistory = append(user.OrderHistory, models.OrderRecord{
		FoodName: foodName,
		Quantity: quantity,
	})
	c.popularity[foodName] += quantity

	c.logger.Info().
		Str("user", userName).
		Str("food", foodName).
		Int("quantity", quantity).
		Msg("order recorded")

	return nil
}

// RateDish sets the food's current rating and records the rating under
// the user's profile. The cuisine must be registered and the dish must
// belong to that cuisine's list.
func (c *Catalog) RateDish(userName, cuisine, dishName string, rating int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cuisineTrie.Contains(cuisine) {
		return fmt.Errorf("rate dish in %q: %w", cuisine, models.ErrUnknownCuisine)
	}

	user, ok := c.users[userName]
	if !ok {
		return fmt.Errorf("rate dish by %q: %w", userName, models.ErrNotFound)
	}
	user.Ratings[dishName] = rating

	for _, name := range c.cuisineFoods[cuisine] {
		if name == dishName {
			c.foods[name].Rating = rating
			c.logger.Info().
				Str("user", userName).
				Str("dish", dishName).
				Int("rating", rating).
				Msg("dish rated")
			return nil
		}
	}

	return fmt.Errorf("rate dish %q in %q: %w", dishName, cuisine, models.ErrUnknownDish)
}

// AddOffer attaches a promotion to a food and enters it into the offer
// tree. A food already promoted keeps its single slot; only the
// promotion text changes.
func (c *Catalog) AddOffer(foodName, promotion string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	food, ok := c.foods[foodName]
	if !ok {
		return fmt.Errorf("add offer for %q: %w", foodName, models.ErrNotFound)
	}

	food.Promotion = promotion
	c.offers.Insert(foodName)

	c.logger.Info().Str("food", foodName).Str("promotion", promotion).Msg("offer added")
	return nil
}

// Offers returns snapshots of all promoted foods ascending by name.
func (c *Catalog) Offers() []models.Food {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := c.offers.InOrder()
	foods := make([]models.Food, 0, len(names))
	for _, name := range names {
		foods = append(foods, *c.foods[name])
	}
	return foods
}

// FoodsFor returns snapshots of a cuisine's foods in insertion order.
// The result is empty when the cuisine is unregistered or has no foods.
func (c *Catalog) FoodsFor(cuisine string) []models.Food {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := c.cuisineFoods[cuisine]
	foods := make([]models.Food, 0, len(names))
	for _, name := range names {
		foods = append(foods, *c.foods[name])
	}
	return foods
}

// AllFoods returns snapshots of every food in catalog insertion order.
func (c *Catalog) AllFoods() []models.Food {
	c.mu.RLock()
	defer c.mu.RUnlock()

	foods := make([]models.Food, 0, len(c.foodOrder))
	for _, name := range c.foodOrder {
		foods = append(foods, *c.foods[name])
	}
	return foods
}

// UserNames returns all usernames in registration order.
func (c *Catalog) UserNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, len(c.userOrder))
	copy(names, c.userOrder)
	return names
}

// OrderedFoodNames returns the food names adjacent to the user in the
// relationship graph, in edge insertion order, including duplicates
// from repeat orders.
func (c *Catalog) OrderedFoodNames(userName string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	neighbors := c.graph.Neighbors(models.UserHandle(userName))
	names := make([]string, 0, len(neighbors))
	for _, h := range neighbors {
		if h.Kind == models.KindFood {
			names = append(names, h.Name)
		}
	}
	return names
}

// RecentArrivals returns the most recently added food names, newest
// first, bounded by the recency ledger capacity.
func (c *Catalog) RecentArrivals() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.recency.Recent()
}

// NutritionRange returns food names whose nutrition score lies within
// tolerance of center, ascending by score.
func (c *Catalog) NutritionRange(center, tolerance float64) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nutrition.RangeLookup(center, tolerance)
}

// NutritionNearest returns the food with exactly the given score, or
// the best lower-score candidate under the tree's asymmetric search.
func (c *Catalog) NutritionNearest(score float64) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nutrition.NearestOrExact(score)
}

// NutritionInOrder returns all food names ascending by nutrition score.
func (c *Catalog) NutritionInOrder() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nutrition.InOrder()
}

// PopularityCounts returns a copy of the cumulative ordered-quantity
// map keyed by food name.
func (c *Catalog) PopularityCounts() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	counts := make(map[string]int, len(c.popularity))
	for name, n := range c.popularity {
		counts[name] = n
	}
	return counts
}

// FoodCount returns the number of foods in the catalog.
func (c *Catalog) FoodCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.foods)
}

// UserCount returns the number of registered users.
func (c *Catalog) UserCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.users)
}
