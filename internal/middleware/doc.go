// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

// Package middleware provides HTTP middleware shared by the API router:
// request ID propagation and Prometheus request instrumentation.
// CORS and rate limiting come from the Chi ecosystem and are wired
// directly in the router.
package middleware
