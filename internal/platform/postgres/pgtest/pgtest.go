// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pgtest opens a migrated PostgreSQL pool for repository integration tests.
//
// Tests using it are skipped unless TEST_DATABASE_URL points at a reachable
// database. Tests only add rows they created themselves, so packages may run
// against the same database in parallel.
package pgtest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/platform/migration"
	"github.com/taibuivan/bookstore/internal/platform/postgres"
)

// EnvDatabaseURL names the variable holding the test database URL.
const EnvDatabaseURL = "TEST_DATABASE_URL"

// Open returns a pool on the test database with all migrations applied.
func Open(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(EnvDatabaseURL)
	if dsn == "" {
		t.Skipf("Skipping test: %s is not set", EnvDatabaseURL)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	pool, err := postgres.NewPool(context.Background(), dsn, logger)
	if err != nil {
		t.Skipf("Skipping test: cannot connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	require.NoError(t, migration.RunUp(dsn, migrationsDir(), logger))
	return pool
}

// migrationsDir locates data/migrations relative to this source file.
func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "data", "migrations")
}
