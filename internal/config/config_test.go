// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Auth.Secret = "test-secret"
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level 'info', got %q", cfg.Logging.Level)
	}
	if cfg.Catalog.RecencyCapacity != 5 {
		t.Errorf("expected default recency capacity 5, got %d", cfg.Catalog.RecencyCapacity)
	}
	if cfg.Recommend.MaxResults != 5 {
		t.Errorf("expected default max results 5, got %d", cfg.Recommend.MaxResults)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("expected default token TTL 24h, got %s", cfg.Auth.TokenTTL)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults with secret",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing auth secret",
			mutate:  func(c *Config) { c.Auth.Secret = "" },
			wantErr: true,
		},
		{
			name:    "port too low",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "port too high",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "negative rate limit",
			mutate:  func(c *Config) { c.Server.RateLimitReqs = -1 },
			wantErr: true,
		},
		{
			name:    "zero recency capacity",
			mutate:  func(c *Config) { c.Catalog.RecencyCapacity = 0 },
			wantErr: true,
		},
		{
			name:    "zero token TTL",
			mutate:  func(c *Config) { c.Auth.TokenTTL = 0 },
			wantErr: true,
		},
		{
			name:    "bad recommend tolerance",
			mutate:  func(c *Config) { c.Recommend.NutritionTolerance = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("FORKCAST_CONFIG", "/nonexistent/config.yaml")
	t.Setenv("FORKCAST_AUTH_SECRET", "env-secret")
	t.Setenv("FORKCAST_SERVER_PORT", "9191")
	t.Setenv("FORKCAST_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Auth.Secret != "env-secret" {
		t.Errorf("expected auth secret from env, got %q", cfg.Auth.Secret)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("expected port 9191 from env, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug' from env, got %q", cfg.Logging.Level)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"FORKCAST_SERVER_PORT", "server.port"},
		{"FORKCAST_AUTH_TOKEN_TTL", "auth.token_ttl"},
		{"FORKCAST_RECOMMEND_MAX_RESULTS", "recommend.max_results"},
		{"FORKCAST_LOGGING_LEVEL", "logging.level"},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.input); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
