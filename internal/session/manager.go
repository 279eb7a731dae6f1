// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/forkcast/internal/catalog"
	"github.com/tomtom215/forkcast/internal/metrics"
	"github.com/tomtom215/forkcast/internal/models"
)

// Session is an authenticated login session.
type Session struct {
	// Token is the signed JWT presented on subsequent requests.
	Token string `json:"token"`

	// Username is the logged-in user.
	Username string `json:"username"`

	// ExpiresAt is when the token stops being accepted.
	ExpiresAt time.Time `json:"expires_at"`
}

// Config holds session manager settings.
type Config struct {
	// Secret signs session JWTs (HS256).
	Secret string `koanf:"secret"`

	// TokenTTL is how long an issued token remains valid.
	TokenTTL time.Duration `koanf:"token_ttl"`

	// BcryptCost is the bcrypt work factor for credential hashing.
	BcryptCost int `koanf:"bcrypt_cost"`
}

// DefaultConfig returns session defaults. The secret is empty and must
// be provided by deployment configuration.
func DefaultConfig() Config {
	return Config{
		TokenTTL:   24 * time.Hour,
		BcryptCost: bcrypt.DefaultCost,
	}
}

// Manager authenticates users against the catalog and tracks active
// sessions. It is safe for concurrent use.
type Manager struct {
	cfg     Config
	catalog *catalog.Catalog
	logger  zerolog.Logger

	mu sync.RWMutex
	// active maps JWT IDs to usernames; Logout deletes the entry,
	// revoking the token before its expiry.
	active map[string]string

	clock func() time.Time
}

// NewManager creates a session manager over the catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewManager(cfg Config, cat *catalog.Catalog, logger zerolog.Logger) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("session secret must be configured")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	return &Manager{
		cfg:     cfg,
		catalog: cat,
		logger:  logger.With().Str("component", "session").Logger(),
		active:  make(map[string]string),
		clock:   time.Now,
	}, nil
}

// Register creates a user account, hashing the credential before it
// reaches the catalog.
func (m *Manager) Register(spec models.UserSpec) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(spec.Credential), m.cfg.BcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash credential: %w", err)
	}
	return m.catalog.AddUser(spec, hash)
}

// Login authenticates a user and issues a session token. Failures are
// typed: models.ErrUnknownUser when the account does not exist,
// models.ErrInvalidCredential when the credential does not match.
// Whether to retry, abort, or exit is the caller's policy decision.
func (m *Manager) Login(username, credential string) (Session, error) {
	hash, err := m.catalog.CredentialHash(username)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("unknown_user").Inc()
		m.logger.Warn().Str("user", username).Msg("login attempt for unknown user")
		return Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(credential)); err != nil {
		metrics.LoginAttempts.WithLabelValues("invalid_credential").Inc()
		m.logger.Warn().Str("user", username).Msg("login attempt with invalid credential")
		return Session{}, fmt.Errorf("login %q: %w", username, models.ErrInvalidCredential)
	}

	now := m.clock()
	expiresAt := now.Add(m.cfg.TokenTTL)
	jti := uuid.NewString()

	claims := jwt.RegisteredClaims{
		Subject:   username,
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		Issuer:    "forkcast",
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return Session{}, fmt.Errorf("sign session token: %w", err)
	}

	m.mu.Lock()
	m.active[jti] = username
	m.mu.Unlock()

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	metrics.ActiveSessions.Inc()
	m.logger.Info().Str("user", username).Msg("user logged in")

	return Session{Token: token, Username: username, ExpiresAt: expiresAt}, nil
}

// Verify resolves a presented token to its username. Malformed,
// expired, and revoked tokens all fail with models.ErrInvalidSession.
func (m *Manager) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(m.cfg.Secret), nil
	}, jwt.WithTimeFunc(m.clock))
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("verify session: %w", models.ErrInvalidSession)
	}

	m.mu.RLock()
	username, ok := m.active[claims.ID]
	m.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("session revoked: %w", models.ErrInvalidSession)
	}

	return username, nil
}

// Logout revokes the session carried by the token. Revoking an already
// invalid token is a no-op.
func (m *Manager) Logout(token string) {
	claims := &jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(m.cfg.Secret), nil
	}, jwt.WithTimeFunc(m.clock)); err != nil {
		return
	}

	m.mu.Lock()
	if username, ok := m.active[claims.ID]; ok {
		delete(m.active, claims.ID)
		metrics.ActiveSessions.Dec()
		m.logger.Info().Str("user", username).Msg("user logged out")
	}
	m.mu.Unlock()
}

// ActiveCount returns the number of live sessions.
func (m *Manager) ActiveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.active)
}
