// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.API.DefaultPageSize != 20 {
		t.Errorf("expected default page size 20, got %d", cfg.API.DefaultPageSize)
	}
	if cfg.API.MaxPageSize != 50 {
		t.Errorf("expected max page size 50, got %d", cfg.API.MaxPageSize)
	}
	if cfg.Security.RateLimitReqs != 100 {
		t.Errorf("expected rate limit 100 reqs, got %d", cfg.Security.RateLimitReqs)
	}
	if cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("expected rate limit window 1m, got %s", cfg.Security.RateLimitWindow)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Data.QuotesPath != "" {
		t.Errorf("expected empty quotes path by default, got %q", cfg.Data.QuotesPath)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
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
			name:    "defaults are valid",
			mutate:  func(_ *Config) {},
			wantErr: false,
		},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "port too large",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Server.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "zero default page size",
			mutate:  func(c *Config) { c.API.DefaultPageSize = 0 },
			wantErr: true,
		},
		{
			name:    "max page size below default",
			mutate:  func(c *Config) { c.API.MaxPageSize = 10 },
			wantErr: true,
		},
		{
			name:    "zero rate limit reqs",
			mutate:  func(c *Config) { c.Security.RateLimitReqs = 0 },
			wantErr: true,
		},
		{
			name: "zero rate limit reqs allowed when disabled",
			mutate: func(c *Config) {
				c.Security.RateLimitReqs = 0
				c.Security.RateLimitDisabled = true
			},
			wantErr: false,
		},
		{
			name:    "no CORS origins",
			mutate:  func(c *Config) { c.Security.CORSOrigins = nil },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HAWKINS_SERVER_PORT", "9090")
	t.Setenv("HAWKINS_LOGGING_LEVEL", "debug")
	t.Setenv("HAWKINS_SECURITY_CORS_ORIGINS", "https://hawkins.example, https://lab.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected env override port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected env override level 'debug', got %q", cfg.Logging.Level)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != "https://hawkins.example" {
		t.Errorf("expected comma-split CORS origins, got %v", cfg.Security.CORSOrigins)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"HAWKINS_SERVER_PORT", "server.port"},
		{"HAWKINS_SERVER_ENVIRONMENT", "server.environment"},
		{"HAWKINS_API_DEFAULT_PAGE_SIZE", "api.default_page_size"},
		{"HAWKINS_API_MAX_PAGE_SIZE", "api.max_page_size"},
		{"HAWKINS_SECURITY_RATE_LIMIT_REQS", "security.rate_limit_reqs"},
		{"HAWKINS_LOGGING_FORMAT", "logging.format"},
		{"HAWKINS_DATA_QUOTES_PATH", "data.quotes_path"},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
