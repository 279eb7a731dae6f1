// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

// requests.go - HTTP request structs with go-playground/validator tags.
// Bodies are decoded with goccy/go-json and validated before any
// catalog or engine call.

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// RegisterUserRequest is the body for POST /api/v1/users.
type RegisterUserRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=100"`
	Credential      string   `json:"credential" validate:"required,min=4"`
	Address         string   `json:"address" validate:"omitempty,max=500"`
	FavoriteCuisine string   `json:"favorite_cuisine" validate:"omitempty,max=100"`
	DietaryPref     string   `json:"dietary_pref" validate:"omitempty,max=100"`
	Allergens       []string `json:"allergens" validate:"omitempty,dive,min=1"`
}

// AddFoodRequest is the body for POST /api/v1/foods.
type AddFoodRequest struct {
	Name                string   `json:"name" validate:"required,min=1,max=200"`
	Cuisine             string   `json:"cuisine" validate:"required,min=1,max=100"`
	Calories            int      `json:"calories" validate:"min=0"`
	Proteins            float64  `json:"proteins" validate:"min=0"`
	Fats                float64  `json:"fats" validate:"min=0"`
	Carbs               float64  `json:"carbs" validate:"min=0"`
	Vitamins            []string `json:"vitamins"`
	Minerals            []string `json:"minerals"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergens           []string `json:"allergens"`
	MealType            string   `json:"meal_type" validate:"omitempty,max=50"`
	FlavorProfile       string   `json:"flavor_profile" validate:"omitempty,max=50"`
}

// RegisterCuisineRequest is the body for POST /api/v1/cuisines.
type RegisterCuisineRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// LoginRequest is the body for POST /api/v1/auth/login.
type LoginRequest struct {
	Username   string `json:"username" validate:"required,min=1"`
	Credential string `json:"credential" validate:"required,min=1"`
}

// OrderRequest is the body for POST /api/v1/orders.
type OrderRequest struct {
	Food     string `json:"food" validate:"required,min=1"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=1000"`
}

// RateRequest is the body for POST /api/v1/ratings.
type RateRequest struct {
	Cuisine string `json:"cuisine" validate:"required,min=1"`
	Dish    string `json:"dish" validate:"required,min=1"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// OfferRequest is the body for POST /api/v1/offers.
type OfferRequest struct {
	Food      string `json:"food" validate:"required,min=1"`
	Promotion string `json:"promotion" validate:"required,min=1,max=500"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// requestValidator returns the shared validator instance.
func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// decodeAndValidate decodes the request body into v and validates it.
// On failure it writes the error response and returns false.
func decodeAndValidate(rw *ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return false
	}

	if err := requestValidator().Struct(v); err != nil {
		details := make([]string, 0, 4)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				details = append(details, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
			}
		}
		rw.ValidationError("request validation failed", details)
		return false
	}

	return true
}

// bearerToken extracts the bearer token from the Authorization header.
// Returns empty string when absent or malformed.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return auth[len(prefix):]
	}
	return ""
}
