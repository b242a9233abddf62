package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key format: login:<key>
const limiterPrefix = "login"

// LoginLimiter counts sign-in attempts per key in a fixed window.
type LoginLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, max: int64(maxAttempts), window: window}
}

// Allow records one attempt for key and reports whether it is within the
// limit, plus the time left in the current window. Errors are returned to the
// caller, which decides whether to let the attempt through.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	k := l.key(key)

	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return true, 0, fmt.Errorf("limiter incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return true, 0, fmt.Errorf("limiter expire: %w", err)
		}
	}
	if count <= l.max {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, k).Result()
	if err != nil || ttl < 0 {
		ttl = l.window
	}
	return false, ttl, nil
}

// Reset clears the counter for key, e.g. after a successful sign-in.
func (l *LoginLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.key(key)).Err()
}

func (l *LoginLimiter) key(key string) string {
	return fmt.Sprintf("%s:%s", limiterPrefix, key)
}
