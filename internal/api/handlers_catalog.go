// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

// handlers_catalog.go - User, food, cuisine, and offer catalog endpoints.

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/forkcast/internal/metrics"
	"github.com/tomtom215/forkcast/internal/models"
)

func (rt *Router) handleHealth(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(map[string]interface{}{
		"status": "ok",
		"foods":  rt.catalog.FoodCount(),
		"users":  rt.catalog.UserCount(),
	})
}

func (rt *Router) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RegisterUserRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	user, err := rt.sessions.Register(models.UserSpec{
		Name:            req.Name,
		Credential:      req.Credential,
		Address:         req.Address,
		FavoriteCuisine: req.FavoriteCuisine,
		DietaryPref:     req.DietaryPref,
		Allergens:       req.Allergens,
	})
	if err != nil {
		respondDomainError(rw, err)
		return
	}

	metrics.CatalogUsers.Set(float64(rt.catalog.UserCount()))
	rw.Created(user)
}

func (rt *Router) handleListUsers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(map[string]interface{}{"users": rt.catalog.UserNames()})
}

// addFoodResponse carries the stored food plus a warning when the food
// was accepted but its cuisine is not registered.
type addFoodResponse struct {
	Food    models.Food `json:"food"`
	Warning string      `json:"warning,omitempty"`
}

func (rt *Router) handleAddFood(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req AddFoodRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	food, cuisineKnown, err := rt.catalog.AddFood(models.FoodSpec{
		Name:                req.Name,
		Cuisine:             req.Cuisine,
		Calories:            req.Calories,
		Proteins:            req.Proteins,
		Fats:                req.Fats,
		Carbs:               req.Carbs,
		Vitamins:            req.Vitamins,
		Minerals:            req.Minerals,
		DietaryRestrictions: req.DietaryRestrictions,
		Allergens:           req.Allergens,
		MealType:            req.MealType,
		FlavorProfile:       req.FlavorProfile,
	})
	if err != nil {
		respondDomainError(rw, err)
		return
	}

	resp := addFoodResponse{Food: food}
	if !cuisineKnown {
		resp.Warning = "cuisine " + req.Cuisine + " is not registered; food excluded from cuisine listings"
	}

	metrics.CatalogFoods.Set(float64(rt.catalog.FoodCount()))
	rw.Created(resp)
}

func (rt *Router) handleListFoods(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(map[string]interface{}{"foods": rt.catalog.AllFoods()})
}

func (rt *Router) handleRegisterCuisine(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RegisterCuisineRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	added := rt.catalog.RegisterCuisine(req.Name)
	rw.Created(map[string]interface{}{"cuisine": req.Name, "added": added})
}

func (rt *Router) handleCuisineFoods(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	cuisine := chi.URLParam(r, "cuisine")
	if !rt.catalog.CuisineRegistered(cuisine) {
		rw.NotFound(ErrCodeUnknownCuisine, "cuisine "+cuisine+" is not registered")
		return
	}

	rw.Success(map[string]interface{}{
		"cuisine": cuisine,
		"foods":   rt.catalog.FoodsFor(cuisine),
	})
}

func (rt *Router) handleAddOffer(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req OfferRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	if err := rt.engine.AddOffer(req.Food, req.Promotion); err != nil {
		respondDomainError(rw, err)
		return
	}

	rw.Success(map[string]interface{}{"food": req.Food, "promotion": req.Promotion})
}

func (rt *Router) handleListOffers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	offers, err := rt.engine.Offers(sessionUser(r))
	if err != nil {
		respondDomainError(rw, err)
		return
	}

	rw.Success(map[string]interface{}{"offers": offers})
}

func (rt *Router) handleSeasonal(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(map[string]interface{}{"items": rt.menu.SeasonalItems()})
}
