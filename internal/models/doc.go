// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

// Package models defines the core domain entities (Food, User) and the
// typed errors shared across the catalog, session, and recommendation
// layers.
//
// Entities are plain data records addressed by their unique name.
// Supplementary indexes never embed entity pointers; they store
// lightweight handles (see Handle) and resolve them through the catalog,
// avoiding aliasing between the five index structures.
package models
