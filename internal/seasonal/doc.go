// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

// Package seasonal implements the seasonal and holiday menu: menu items
// tied to seasons or holidays, ingredient availability scoring, demand
// pricing, and sales bookkeeping.
//
// The package is a self-contained collaborator of the recommendation
// core: the API consumes SeasonalItems and RecordSale, and seasonal
// menu items do not share identity with catalog foods.
package seasonal
