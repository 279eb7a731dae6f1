// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package session

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/forkcast/internal/catalog"
	"github.com/tomtom215/forkcast/internal/models"
)

func newTestManager(t *testing.T) (*Manager, *catalog.Catalog) {
	t.Helper()

	cat := catalog.New(5, zerolog.Nop())
	cfg := Config{
		Secret:     "test-secret",
		BcryptCost: bcrypt.MinCost, // keep the hashing cheap in tests
	}
	m, err := NewManager(cfg, cat, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return m, cat
}

func TestManager_RequiresSecret(t *testing.T) {
	cat := catalog.New(5, zerolog.Nop())
	if _, err := NewManager(Config{}, cat, zerolog.Nop()); err == nil {
		t.Error("NewManager without a secret must fail")
	}
}

func TestManager_RegisterAndLogin(t *testing.T) {
	m, _ := newTestManager(t)

	if _, err := m.Register(models.UserSpec{Name: "alice", Credential: "password123"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	sess, err := m.Login("alice", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if sess.Username != "alice" || sess.Token == "" {
		t.Errorf("Session = %+v", sess)
	}

	username, err := m.Verify(sess.Token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if username != "alice" {
		t.Errorf("Verify resolved to %q, want alice", username)
	}
}

func TestManager_LoginFailuresAreTyped(t *testing.T) {
	m, _ := newTestManager(t)
	m.Register(models.UserSpec{Name: "alice", Credential: "password123"})

	// Login failure is a returned error, never process termination.
	if _, err := m.Login("ghost", "whatever"); !errors.Is(err, models.ErrUnknownUser) {
		t.Errorf("unknown user err = %v, want ErrUnknownUser", err)
	}
	if _, err := m.Login("alice", "wrong"); !errors.Is(err, models.ErrInvalidCredential) {
		t.Errorf("invalid credential err = %v, want ErrInvalidCredential", err)
	}
}

func TestManager_LogoutRevokes(t *testing.T) {
	m, _ := newTestManager(t)
	m.Register(models.UserSpec{Name: "alice", Credential: "password123"})

	sess, err := m.Login("alice", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if m.ActiveCount() != 1 {
		t.Errorf("ActiveCount = %d, want 1", m.ActiveCount())
	}

	m.Logout(sess.Token)
	if m.ActiveCount() != 0 {
		t.Errorf("ActiveCount after logout = %d, want 0", m.ActiveCount())
	}

	if _, err := m.Verify(sess.Token); !errors.Is(err, models.ErrInvalidSession) {
		t.Errorf("Verify after logout err = %v, want ErrInvalidSession", err)
	}

	// Logging out again is harmless.
	m.Logout(sess.Token)
}

func TestManager_VerifyRejectsGarbage(t *testing.T) {
	m, _ := newTestManager(t)

	if _, err := m.Verify("not-a-jwt"); !errors.Is(err, models.ErrInvalidSession) {
		t.Errorf("garbage token err = %v, want ErrInvalidSession", err)
	}
}

func TestManager_IndependentSessions(t *testing.T) {
	m, _ := newTestManager(t)
	m.Register(models.UserSpec{Name: "alice", Credential: "pw-a"})
	m.Register(models.UserSpec{Name: "bob", Credential: "pw-b"})

	sa, _ := m.Login("alice", "pw-a")
	sb, _ := m.Login("bob", "pw-b")

	m.Logout(sa.Token)

	if _, err := m.Verify(sb.Token); err != nil {
		t.Errorf("bob's session must survive alice's logout: %v", err)
	}
}
