// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/taibuivan/bookstore/internal/platform/redis"
)

func TestNewClient_InvalidURL(t *testing.T) {
	client, err := redisstore.NewClient(context.Background(), "not-a-url", slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Nil(t, client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: invalid URL")
}

func TestPing_Unreachable(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	err := redisstore.Ping(context.Background(), client)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: ping failed")
}
