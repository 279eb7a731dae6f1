// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package models

// EntityKind distinguishes the two vertex types in the relationship graph.
type EntityKind int

const (
	// KindUser identifies a user vertex.
	KindUser EntityKind = iota
	// KindFood identifies a food vertex.
	KindFood
)

// String returns a human-readable name for the entity kind.
func (k EntityKind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindFood:
		return "food"
	default:
		return "unknown"
	}
}

// Handle is a stable, copyable reference to an entity. Indexes store
// handles rather than entity pointers; the catalog resolves them back
// to records.
type Handle struct {
	Kind EntityKind
	Name string
}

// UserHandle returns the handle for a user name.
func UserHandle(name string) Handle {
	return Handle{Kind: KindUser, Name: name}
}

// FoodHandle returns the handle for a food name.
func FoodHandle(name string) Handle {
	return Handle{Kind: KindFood, Name: name}
}

// String implements fmt.Stringer for logging.
func (h Handle) String() string {
	return h.Kind.String() + "/" + h.Name
}

// Food is a catalog food item. Name is the identity and is immutable
// once created, as are all fields except Rating and Promotion.
type Food struct {
	// Name is the unique, case-sensitive identity of the food.
	Name string `json:"name"`

	// Cuisine is the cuisine type (e.g. "Italian"). It may name a
	// cuisine the registry does not know; such foods are excluded from
	// cuisine-scoped and recency recommendations.
	Cuisine string `json:"cuisine"`

	// Calories is the calorie count used by time-based filtering.
	Calories int `json:"calories"`

	// NutritionScore is derived once at creation from the macro and
	// micronutrient inputs and never recomputed.
	NutritionScore float64 `json:"nutrition_score"`

	// Rating is the current rating (default 0). Mutable.
	Rating int `json:"rating"`

	// DietaryRestrictions holds dietary tags (e.g. "Vegan").
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`

	// Allergens holds allergen tags (e.g. "Gluten").
	Allergens []string `json:"allergens,omitempty"`

	// MealType buckets the food for time-based suggestions
	// (breakfast, lunch, dinner, snack, late-night). Matched
	// case-insensitively.
	MealType string `json:"meal_type"`

	// FlavorProfile tags the food for pairing recommendations.
	FlavorProfile string `json:"flavor_profile"`

	// ArrivalSeq is the food's position within its cuisine's list,
	// assigned at creation. Immutable. Zero for foods whose cuisine
	// was unregistered at creation time.
	ArrivalSeq int `json:"arrival_seq"`

	// Promotion is the active promotion text, empty when none.
	Promotion string `json:"promotion,omitempty"`
}

// Handle returns the graph handle for this food.
func (f *Food) Handle() Handle {
	return FoodHandle(f.Name)
}

// OrderRecord is one entry in a user's order history.
type OrderRecord struct {
	FoodName string `json:"food_name"`
	Quantity int    `json:"quantity"`
}

// User is a registered account. Name is the identity.
type User struct {
	// Name is the unique username.
	Name string `json:"name"`

	// CredentialHash is the bcrypt hash of the user's credential.
	// Never serialized.
	CredentialHash []byte `json:"-"`

	// Address is the delivery address.
	Address string `json:"address"`

	// FavoriteCuisine is the user's preferred cuisine.
	FavoriteCuisine string `json:"favorite_cuisine"`

	// DietaryPref is the dietary preference. Mutable.
	DietaryPref string `json:"dietary_pref"`

	// Allergens is the user's allergen set. Mutable.
	Allergens []string `json:"allergens,omitempty"`

	// OrderHistory records orders in placement order.
	OrderHistory []OrderRecord `json:"order_history,omitempty"`

	// Ratings maps dish name to the rating this user gave it.
	Ratings map[string]int `json:"ratings,omitempty"`
}

// Handle returns the graph handle for this user.
func (u *User) Handle() Handle {
	return UserHandle(u.Name)
}

// FoodSpec carries the inputs for creating a Food. The nutrition score
// is computed from the spec at insertion time.
type FoodSpec struct {
	Name                string
	Cuisine             string
	Calories            int
	Proteins            float64
	Fats                float64
	Carbs               float64
	Vitamins            []string
	Minerals            []string
	DietaryRestrictions []string
	Allergens           []string
	MealType            string
	FlavorProfile       string
}

// NutritionScore computes the derived nutrition score: an Atwater-like
// energy weighting of the macronutrients plus a micronutrient bonus
// proportional to count.
func (s FoodSpec) NutritionScore() float64 {
	score := s.Proteins*4 + s.Fats*9 + s.Carbs*4 - float64(s.Calories)*0.1
	score += float64(len(s.Vitamins)) * 2
	score += float64(len(s.Minerals)) * 1.5
	return score
}

// UserSpec carries the inputs for creating a User. Credential is the
// plaintext credential; it is hashed before storage and never retained.
type UserSpec struct {
	Name            string
	Credential      string
	Address         string
	FavoriteCuisine string
	DietaryPref     string
	Allergens       []string
}
