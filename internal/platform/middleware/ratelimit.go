// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/constants"
	"github.com/taibuivan/bookstore/internal/platform/ctxutil"
	"github.com/taibuivan/bookstore/internal/platform/respond"
)

// # Rate Limiting

// Limiter decides whether the client identified by key may proceed.
// When it may not, retryAfter says how long the client should wait.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// RateLimit rejects requests with 429 once a client IP exhausts its allowance.
//
// A limiter error lets the request through: losing the counter store must not
// take the catalog down with it.
func RateLimit(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// Identify the client by their IP address
			clientIP := RealIP(request)

			allowed, retryAfter, err := limiter.Allow(request.Context(), clientIP)
			if err != nil {
				ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "rate_limiter_unavailable",
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(writer, request)
				return
			}

			if !allowed {
				seconds := max(1, int(math.Ceil(retryAfter.Seconds())))
				writer.Header().Set(constants.HeaderRetryAfter, strconv.Itoa(seconds))
				respond.Error(writer, request, apperr.RateLimited(seconds))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// # In-Process Token Bucket

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one token bucket per client in process memory.
// Limits are per replica.
type MemoryLimiter struct {
	rps   rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*rateLimitClient
}

// NewMemoryLimiter starts a limiter whose idle clients are evicted until ctx is done.
func NewMemoryLimiter(ctx context.Context, rps float64, burst int) *MemoryLimiter {
	limiter := &MemoryLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		clients: make(map[string]*rateLimitClient),
	}

	// Start a background cleanup routine that respects context cancellation
	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				limiter.evictIdle(time.Now())
			case <-ctx.Done():
				return
			}
		}
	}()

	return limiter
}

// Allow implements [Limiter].
func (limiter *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	clientInfo, found := limiter.clients[key]

	// Initialize a new bucket if this is a fresh client
	if !found {
		clientInfo = &rateLimitClient{limiter: rate.NewLimiter(limiter.rps, limiter.burst)}
		limiter.clients[key] = clientInfo
	}

	now := time.Now()
	clientInfo.lastSeen = now

	reservation := clientInfo.limiter.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return false, delay, nil
	}
	return true, 0, nil
}

func (limiter *MemoryLimiter) evictIdle(now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	for key, clientInfo := range limiter.clients {
		if now.Sub(clientInfo.lastSeen) > constants.RateLimitClientTTL {
			delete(limiter.clients, key)
		}
	}
}

// # Shared Fixed Window

// RedisLimiter counts requests per client in fixed windows stored in Redis,
// so every replica enforces one shared allowance.
type RedisLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRedisLimiter allows limit requests per client per [constants.RateLimitWindow].
func NewRedisLimiter(client redis.Cmdable, limit int) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: constants.RateLimitWindow,
		now:    time.Now,
	}
}

// Allow implements [Limiter].
func (limiter *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := limiter.now()
	slot := now.UnixNano() / int64(limiter.window)
	counterKey := fmt.Sprintf("%s%s:%d", constants.RedisPrefixRateLimit, key, slot)

	var hits *redis.IntCmd
	_, err := limiter.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		hits = pipe.Incr(ctx, counterKey)
		pipe.Expire(ctx, counterKey, 2*limiter.window)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("ratelimit: redis: %w", err)
	}

	if hits.Val() > limiter.limit {
		windowEnd := time.Unix(0, (slot+1)*int64(limiter.window))
		return false, windowEnd.Sub(now), nil
	}
	return true, 0, nil
}
