// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

// handlers_recommend.go - Order, rating, and recommendation endpoints.
// All handlers here run behind the session middleware.

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (rt *Router) handleOrder(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req OrderRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	if err := rt.engine.OrderFood(sessionUser(r), req.Food, req.Quantity); err != nil {
		respondDomainError(rw, err)
		return
	}

	rw.Success(map[string]interface{}{"food": req.Food, "quantity": req.Quantity})
}

func (rt *Router) handleOrderHistory(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(map[string]interface{}{
		"foods": rt.catalog.OrderedFoodNames(sessionUser(r)),
	})
}

func (rt *Router) handleRate(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RateRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	if err := rt.engine.RateDish(sessionUser(r), req.Cuisine, req.Dish, req.Rating); err != nil {
		respondDomainError(rw, err)
		return
	}

	rw.Success(map[string]interface{}{"dish": req.Dish, "rating": req.Rating})
}

// namesResponse wraps an ordered recommendation result.
func (rt *Router) respondNames(rw *ResponseWriter, strategy string, names []string, err error) {
	if err != nil {
		respondDomainError(rw, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	rw.Success(map[string]interface{}{"strategy": strategy, "foods": names})
}

func (rt *Router) handleRecommendCuisine(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	names, err := rt.engine.ByCuisine(sessionUser(r), chi.URLParam(r, "cuisine"))
	rt.respondNames(rw, "cuisine", names, err)
}

func (rt *Router) handleRecommendArrivals(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	names, err := rt.engine.NewArrivals(sessionUser(r))
	rt.respondNames(rw, "arrivals", names, err)
}

func (rt *Router) handleRecommendPersonalized(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	names, err := rt.engine.Personalized(sessionUser(r))
	rt.respondNames(rw, "personalized", names, err)
}

func (rt *Router) handleRecommendNutrition(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	names, err := rt.engine.ByNutrition(sessionUser(r))
	rt.respondNames(rw, "nutrition", names, err)
}

func (rt *Router) handleRecommendNearest(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	score, err := strconv.ParseFloat(r.URL.Query().Get("score"), 64)
	if err != nil {
		rw.BadRequest("score query parameter must be a number")
		return
	}

	name, found, err := rt.engine.NearestByScore(sessionUser(r), score)
	if err != nil {
		respondDomainError(rw, err)
		return
	}

	rw.Success(map[string]interface{}{"score": score, "food": name, "found": found})
}

func (rt *Router) handleRecommendPopular(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	names, err := rt.engine.Popular(sessionUser(r))
	rt.respondNames(rw, "popular", names, err)
}

func (rt *Router) handleRecommendTime(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	names, err := rt.engine.TimeBased(sessionUser(r))
	rt.respondNames(rw, "time", names, err)
}

func (rt *Router) handleRecommendPairing(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	main := r.URL.Query().Get("main")
	if main == "" {
		rw.BadRequest("main query parameter is required")
		return
	}

	names, err := rt.engine.Pairing(sessionUser(r), main)
	rt.respondNames(rw, "pairing", names, err)
}
