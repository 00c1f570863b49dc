// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis connects to the optional Redis that backs the shared rate limiter.

Only short-lived request counters live there. Catalog data stays in PostgreSQL,
and the server runs without Redis when REDIS_URL is unset.
*/
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter updates are one round trip; anything slower means Redis is unhealthy.
const (
	commandTimeout = 500 * time.Millisecond
	pingTimeout    = 2 * time.Second
)

// NewClient connects to redisURL and verifies the connection before returning.
func NewClient(ctx context.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}
	options.ReadTimeout = commandTimeout
	options.WriteTimeout = commandTimeout

	client := redis.NewClient(options)
	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_connected", slog.String("addr", options.Addr), slog.Int("db", options.DB))
	return client, nil
}

// Ping reports whether Redis answers within a short deadline.
func Ping(ctx context.Context, client redis.UniversalClient) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}
