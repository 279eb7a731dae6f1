// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

// errors.go - Mapping from domain sentinel errors to API responses.

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/forkcast/internal/models"
)

// respondDomainError translates a catalog, session, or engine error into
// the matching HTTP status and machine-readable code.
func respondDomainError(rw *ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrDuplicateEntity):
		rw.Conflict(err.Error())
	case errors.Is(err, models.ErrNoActiveSession):
		rw.Unauthorized(ErrCodeNoSession, err.Error())
	case errors.Is(err, models.ErrInvalidSession):
		rw.Unauthorized(ErrCodeInvalidSession, err.Error())
	case errors.Is(err, models.ErrInvalidCredential):
		rw.Unauthorized(ErrCodeInvalidCredential, err.Error())
	case errors.Is(err, models.ErrUnknownUser):
		rw.NotFound(ErrCodeUnknownUser, err.Error())
	case errors.Is(err, models.ErrUnknownCuisine):
		rw.NotFound(ErrCodeUnknownCuisine, err.Error())
	case errors.Is(err, models.ErrUnknownDish):
		rw.NotFound(ErrCodeUnknownDish, err.Error())
	case errors.Is(err, models.ErrNotFound):
		rw.NotFound(ErrCodeNotFound, err.Error())
	default:
		rw.Error(http.StatusInternalServerError, ErrCodeInternalError, "internal error")
	}
}
