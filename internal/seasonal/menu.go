// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package seasonal

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Ingredient is a priced ingredient with seasonal availability.
type Ingredient struct {
	Name          string
	PeakSeasons   []Season
	ShelfLifeDays int
	BaseCost      float64
	LocalSourcing bool
}

// MenuItem is a seasonal or holiday menu entry.
type MenuItem struct {
	Name        string
	Description string
	BasePrice   float64
	Ingredients []Ingredient
	Seasons     []Season
	Holidays    []Holiday

	// salesHistory maps "YYYY-MM" to units sold that month.
	salesHistory map[string]int

	// popularityScore starts neutral and tracks the item's share of
	// the menu's best seller.
	popularityScore float64
}

// NewMenuItem creates a menu item with a neutral popularity score.
func NewMenuItem(name, description string, basePrice float64, ingredients []Ingredient, seasons []Season, holidays []Holiday) *MenuItem {
	return &MenuItem{
		Name:            name,
		Description:     description,
		BasePrice:       basePrice,
		Ingredients:     ingredients,
		Seasons:         seasons,
		Holidays:        holidays,
		salesHistory:    make(map[string]int),
		popularityScore: 0.5,
	}
}

// totalSales sums the item's sales across all months.
func (m *MenuItem) totalSales() int {
	total := 0
	for _, n := range m.salesHistory {
		total += n
	}
	return total
}

// updatePopularity rescales the popularity score against the menu's
// current best seller.
func (m *MenuItem) updatePopularity(salesCount, maxSales int) {
	m.popularityScore = math.Min(1.0, float64(salesCount)/float64(maxSales))
}

// SeasonalItem is the consumable view of an active menu item.
type SeasonalItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Availability float64 `json:"availability"`
	Popularity  float64 `json:"popularity"`
}

// seasonalPrice applies demand pricing: scarcity of ingredients and
// item popularity both push the price above base.
func seasonalPrice(basePrice, popularity, availability float64) float64 {
	seasonalFactor := 1 + 0.3*(1-availability)
	popularityFactor := 1 + 0.2*popularity
	return basePrice * seasonalFactor * popularityFactor
}

// Menu holds the seasonal menu items and their sales history.
// It is safe for concurrent use.
type Menu struct {
	mu     sync.RWMutex
	items  []*MenuItem
	logger zerolog.Logger
	clock  func() time.Time
}

// Option configures a Menu.
type Option func(*Menu)

// WithClock overrides the menu's time source.
func WithClock(clock func() time.Time) Option {
	return func(m *Menu) {
		m.clock = clock
	}
}

// NewMenu creates an empty seasonal menu.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMenu(logger zerolog.Logger, opts ...Option) *Menu {
	m := &Menu{
		logger: logger.With().Str("component", "seasonal").Logger(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddItem registers a menu item.
func (m *Menu) AddItem(item *MenuItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, item)
}

// RecordSale books quantity units against an item under the current
// month. Unknown items are ignored.
func (m *Menu) RecordSale(itemName string, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	monthKey := m.clock().Format("2006-01")
	for _, item := range m.items {
		if item.Name == itemName {
			item.salesHistory[monthKey] += quantity
			m.logger.Debug().
				Str("item", itemName).
				Int("quantity", quantity).
				Str("month", monthKey).
				Msg("sale recorded")
			return
		}
	}
}

// ingredientAvailability scores how in-season an ingredient currently
// is: 1.0 during a peak season, otherwise decaying with the distance in
// months to the nearest peak, floored at 0.2.
func (m *Menu) ingredientAvailability(ing Ingredient, now time.Time) float64 {
	current := SeasonOf(now)
	for _, s := range ing.PeakSeasons {
		if s == current {
			return 1.0
		}
	}

	currentMonth := int(now.Month())
	minDistance := math.Inf(1)
	for _, s := range ing.PeakSeasons {
		for _, peak := range s.Months() {
			d := math.Min(
				float64((currentMonth-int(peak)+12)%12),
				float64((int(peak)-currentMonth+12)%12),
			)
			minDistance = math.Min(minDistance, d)
		}
	}

	return math.Max(0.2, 1-minDistance/6)
}

// SeasonalItems returns the items active for the current season or
// holiday, priced for current availability and popularity, sorted by
// (availability, popularity) descending.
func (m *Menu) SeasonalItems() []SeasonalItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock()
	currentSeason := SeasonOf(now)
	currentHoliday, onHoliday := HolidayOn(now)

	maxSales := 1
	for _, item := range m.items {
		if s := item.totalSales(); s > maxSales {
			maxSales = s
		}
	}

	var active []SeasonalItem
	for _, item := range m.items {
		if !m.itemActive(item, currentSeason, currentHoliday, onHoliday) {
			continue
		}

		availability := 0.0
		if len(item.Ingredients) > 0 {
			for _, ing := range item.Ingredients {
				availability += m.ingredientAvailability(ing, now)
			}
			availability /= float64(len(item.Ingredients))
		}

		item.updatePopularity(item.totalSales(), maxSales)

		price := seasonalPrice(item.BasePrice, item.popularityScore, availability)

		active = append(active, SeasonalItem{
			Name:         item.Name,
			Description:  item.Description,
			Price:        math.Round(price*100) / 100,
			Availability: availability,
			Popularity:   item.popularityScore,
		})
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Availability != active[j].Availability {
			return active[i].Availability > active[j].Availability
		}
		return active[i].Popularity > active[j].Popularity
	})

	return active
}

func (m *Menu) itemActive(item *MenuItem, season Season, holiday Holiday, onHoliday bool) bool {
	for _, s := range item.Seasons {
		if s == season {
			return true
		}
	}
	if onHoliday {
		for _, h := range item.Holidays {
			if h == holiday {
				return true
			}
		}
	}
	return false
}
