// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

/*
Package metrics provides Prometheus metrics collection and export for
observability.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8435/metrics

# Available Metrics

HTTP Metrics:
  - http_requests_total: Total HTTP requests (counter)
    Labels: method, endpoint, status
  - http_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint

Recommendation Metrics:
  - recommendation_requests_total: Strategy invocations (counter)
    Labels: strategy
  - recommendation_duration_seconds: Strategy latency (histogram)
    Labels: strategy

Catalog Metrics:
  - catalog_foods: Foods in the catalog (gauge)
  - catalog_users: Registered users (gauge)
  - orders_placed_total: Orders placed (counter)

Session Metrics:
  - login_attempts_total: Login attempts (counter)
    Labels: outcome (success, invalid_credential, unknown_user)
*/
package metrics
