// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tomtom215/forkcast/internal/catalog"
	"github.com/tomtom215/forkcast/internal/middleware"
	"github.com/tomtom215/forkcast/internal/recommend"
	"github.com/tomtom215/forkcast/internal/seasonal"
	"github.com/tomtom215/forkcast/internal/session"
)

// RouterConfig holds the HTTP-level settings the router needs.
type RouterConfig struct {
	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string

	// RateLimitReqs is the allowed requests per window per client IP.
	// Zero disables rate limiting.
	RateLimitReqs int

	// RateLimitWindow is the rate limit window size.
	RateLimitWindow time.Duration
}

// Router hosts the Forkcast API handlers and their dependencies.
type Router struct {
	cfg      RouterConfig
	catalog  *catalog.Catalog
	engine   *recommend.Engine
	sessions *session.Manager
	menu     *seasonal.Menu
	logger   zerolog.Logger
}

// NewRouter creates a Router with the given dependencies.
func NewRouter(
	cfg RouterConfig,
	cat *catalog.Catalog,
	engine *recommend.Engine,
	sessions *session.Manager,
	menu *seasonal.Menu,
	logger zerolog.Logger,
) *Router {
	return &Router{
		cfg:      cfg,
		catalog:  cat,
		engine:   engine,
		sessions: sessions,
		menu:     menu,
		logger:   logger.With().Str("component", "api").Logger(),
	}
}

// Handler builds the chi routing tree.
func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         86400,
	}))

	r.Get("/healthz", rt.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if rt.cfg.RateLimitReqs > 0 {
			r.Use(httprate.LimitByIP(rt.cfg.RateLimitReqs, rt.cfg.RateLimitWindow))
		}
		r.Use(middleware.PrometheusMetrics)

		// Open endpoints
		r.Post("/users", rt.handleRegisterUser)
		r.Get("/users", rt.handleListUsers)
		r.Post("/foods", rt.handleAddFood)
		r.Get("/foods", rt.handleListFoods)
		r.Post("/cuisines", rt.handleRegisterCuisine)
		r.Get("/cuisines/{cuisine}/foods", rt.handleCuisineFoods)
		r.Post("/auth/login", rt.handleLogin)
		r.Post("/auth/logout", rt.handleLogout)
		r.Post("/offers", rt.handleAddOffer)
		r.Get("/seasonal", rt.handleSeasonal)

		// Session-scoped endpoints
		r.Group(func(r chi.Router) {
			r.Use(rt.requireSession)

			r.Post("/orders", rt.handleOrder)
			r.Get("/orders", rt.handleOrderHistory)
			r.Post("/ratings", rt.handleRate)
			r.Get("/offers", rt.handleListOffers)

			r.Route("/recommendations", func(r chi.Router) {
				r.Get("/cuisine/{cuisine}", rt.handleRecommendCuisine)
				r.Get("/arrivals", rt.handleRecommendArrivals)
				r.Get("/personalized", rt.handleRecommendPersonalized)
				r.Get("/nutrition", rt.handleRecommendNutrition)
				r.Get("/nutrition/nearest", rt.handleRecommendNearest)
				r.Get("/popular", rt.handleRecommendPopular)
				r.Get("/time", rt.handleRecommendTime)
				r.Get("/pairing", rt.handleRecommendPairing)
			})
		})
	})

	return r
}

// sessionUserKey is the context key for the authenticated username.
type sessionUserKey struct{}

// requireSession verifies the bearer token and stores the username in the
// request context. Requests without a valid session are rejected before
// reaching the handler.
func (rt *Router) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := NewResponseWriter(w, r)

		token := bearerToken(r)
		if token == "" {
			rw.Unauthorized(ErrCodeNoSession, "no active session")
			return
		}

		username, err := rt.sessions.Verify(token)
		if err != nil {
			respondDomainError(rw, err)
			return
		}

		ctx := context.WithValue(r.Context(), sessionUserKey{}, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionUser returns the authenticated username from the request context.
func sessionUser(r *http.Request) string {
	if name, ok := r.Context().Value(sessionUserKey{}).(string); ok {
		return name
	}
	return ""
}
