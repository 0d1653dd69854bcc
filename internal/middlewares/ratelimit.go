package middlewares

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
)

// Limiter decides whether a request identified by key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter is a Redis-backed fixed-window rate limiter.
type RedisLimiter struct {
	client redis.Cmdable
	prefix string
	rate   int
	window time.Duration
}

// NewRedisLimiter creates a rate limiter allowing rate requests per window.
func NewRedisLimiter(client redis.Cmdable, prefix string, rate int, window time.Duration) *RedisLimiter {
	if prefix == "" {
		prefix = "ratelimit:"
	}
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		rate:   rate,
		window: window,
	}
}

// Allow increments the counter for key and reports whether the request
// fits within the current window. The expiry is set on the first hit so
// the window starts with the first request.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.prefix + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(l.rate), nil
}

// RateLimitMiddleware returns a middleware that rejects requests over the
// limit with 429. The client IP is the rate limit key. Limiter errors fail
// open: an unreachable Redis must not take authentication down with it.
func RateLimitMiddleware(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				key = r.RemoteAddr
			}

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Log.Errorw("rate limiter failed", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "Too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
