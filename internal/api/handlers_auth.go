// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

// handlers_auth.go - Login and logout endpoints.

package api

import (
	"net/http"
)

func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req LoginRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	sess, err := rt.sessions.Login(req.Username, req.Credential)
	if err != nil {
		respondDomainError(rw, err)
		return
	}

	rw.Success(map[string]interface{}{
		"token":      sess.Token,
		"username":   sess.Username,
		"expires_at": sess.ExpiresAt,
	})
}

func (rt *Router) handleLogout(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	token := bearerToken(r)
	if token == "" {
		rw.Unauthorized(ErrCodeNoSession, "no active session")
		return
	}

	rt.sessions.Logout(token)
	rw.NoContent()
}
