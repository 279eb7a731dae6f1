// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package recommend

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/forkcast/internal/catalog"
	"github.com/tomtom215/forkcast/internal/metrics"
	"github.com/tomtom215/forkcast/internal/models"
)

// Engine orchestrates the recommendation strategies over the catalog's
// indexes. It is safe for concurrent use: the engine itself is
// stateless and the catalog serializes access internally.
type Engine struct {
	cfg     *Config
	catalog *catalog.Catalog
	logger  zerolog.Logger

	// clock is injectable so time-based suggestions are testable.
	clock func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// NewEngine creates a recommendation engine over the given catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, cat *catalog.Catalog, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		cfg:     cfg,
		catalog: cat,
		logger:  logger.With().Str("component", "recommend").Logger(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// requireSession validates that a session username is present.
func requireSession(user string) error {
	if user == "" {
		return models.ErrNoActiveSession
	}
	return nil
}

// observe records strategy metrics and returns the elapsed time.
func (e *Engine) observe(strategy string, start time.Time) {
	metrics.RecommendationRequests.WithLabelValues(strategy).Inc()
	metrics.RecommendationDuration.WithLabelValues(strategy).Observe(time.Since(start).Seconds())
}

// NewArrivals returns the most recently added foods overall, newest
// first, bounded by the recency ledger capacity.
func (e *Engine) NewArrivals(user string) ([]string, error) {
	if err := requireSession(user); err != nil {
		return nil, err
	}
	defer e.observe("arrivals", e.clock())

	return e.catalog.RecentArrivals(), nil
}

// OfferItem pairs a promoted food with its promotion text.
type OfferItem struct {
	Name      string `json:"name"`
	Cuisine   string `json:"cuisine"`
	Promotion string `json:"promotion"`
}

// Offers returns all promoted foods ascending by name with their
// promotion text.
func (e *Engine) Offers(user string) ([]OfferItem, error) {
	if err := requireSession(user); err != nil {
		return nil, err
	}
	defer e.observe("offers", e.clock())

	foods := e.catalog.Offers()
	items := make([]OfferItem, 0, len(foods))
	for _, f := range foods {
		items = append(items, OfferItem{
			Name:      f.Name,
			Cuisine:   f.Cuisine,
			Promotion: f.Promotion,
		})
	}
	return items, nil
}

// OrderFood places an order for the session user, recording the
// relationship edge, order history, and popularity count.
func (e *Engine) OrderFood(user, foodName string, quantity int) error {
	if err := requireSession(user); err != nil {
		return err
	}
	if err := e.catalog.RecordOrder(user, foodName, quantity); err != nil {
		return err
	}
	metrics.OrdersPlaced.Inc()
	return nil
}

// RateDish records the session user's rating for a dish in a cuisine.
func (e *Engine) RateDish(user, cuisine, dishName string, rating int) error {
	if err := requireSession(user); err != nil {
		return err
	}
	return e.catalog.RateDish(user, cuisine, dishName, rating)
}

// AddOffer attaches a promotion to a food. Offers are an
// administrative mutation and do not require a session.
func (e *Engine) AddOffer(foodName, promotion string) error {
	return e.catalog.AddOffer(foodName, promotion)
}

// capped returns at most n entries of names.
func capped(names []string, n int) []string {
	if len(names) > n {
		return names[:n]
	}
	return names
}
