// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package models

import "errors"

// Typed errors shared across the catalog, session, and recommendation
// layers. Callers match with errors.Is; the API layer maps each to a
// machine-readable response code.
var (
	// ErrDuplicateEntity indicates an add with a name already in the
	// catalog. The operation is a no-op.
	ErrDuplicateEntity = errors.New("entity already exists")

	// ErrNotFound indicates a referenced food or user is absent.
	ErrNotFound = errors.New("entity not found")

	// ErrUnknownCuisine indicates a cuisine that was never registered.
	ErrUnknownCuisine = errors.New("cuisine not registered")

	// ErrUnknownDish indicates a dish absent from the named cuisine.
	ErrUnknownDish = errors.New("dish not found in cuisine")

	// ErrNoActiveSession indicates an operation requiring a logged-in
	// user was called without one.
	ErrNoActiveSession = errors.New("no active session")

	// ErrUnknownUser indicates a login attempt for a username that
	// does not exist.
	ErrUnknownUser = errors.New("unknown user")

	// ErrInvalidCredential indicates a login attempt with a credential
	// that does not match. Login failures are returned to the caller,
	// never terminate the process.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrInvalidSession indicates a session token that is malformed,
	// expired, or revoked.
	ErrInvalidSession = errors.New("invalid session token")
)
