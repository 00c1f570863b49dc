// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/platform/config"
)

// isolate points ENV_FILE at a file that does not exist so a developer's .env
// cannot leak into the test.
func isolate(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/bookstore")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "./data/migrations", cfg.MigrationPath)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 100.0, cfg.RateLimitRPS)
	assert.Equal(t, 150, cfg.RateLimitBurst)
	assert.True(t, cfg.OriginAllowed("https://anything.example"))
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	isolate(t)
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_URL=postgres://dotenv/bookstore\nSERVER_PORT=9090\n"), 0o600))
	t.Setenv("ENV_FILE", path)

	// Process environment takes precedence over the file.
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://dotenv/bookstore", cfg.DatabaseURL)
	assert.Equal(t, "7070", cfg.ServerPort)
}

func TestLoad_AllowedOrigins(t *testing.T) {
	isolate(t)
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/bookstore")
	t.Setenv("ALLOWED_ORIGINS", "https://shop.example,https://admin.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.OriginAllowed("https://admin.example"))
	assert.False(t, cfg.OriginAllowed("https://evil.example"))
}

func TestLoad_InvalidRateLimit(t *testing.T) {
	isolate(t)
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/bookstore")
	t.Setenv("RATE_LIMIT_BURST", "0")

	_, err := config.Load()
	assert.Error(t, err)
}
