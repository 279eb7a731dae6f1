// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

// Package session handles account registration, login, and session
// tokens.
//
// Credentials are stored as bcrypt hashes; login failures are returned
// as typed errors (models.ErrUnknownUser, models.ErrInvalidCredential)
// for the caller to act on; the engine never terminates the process
// over a failed login. A successful login issues a signed JWT carrying
// the username plus a server-side session record, so Logout genuinely
// revokes the token rather than waiting for expiry.
package session
