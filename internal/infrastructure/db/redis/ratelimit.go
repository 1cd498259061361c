package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	loginWindow      = 15 * time.Minute
	maxLoginAttempts = 10
)

// LoginRateLimiter counts login attempts per portal and natural key in a
// fixed window. Key format: login_attempts:<portal>:<natural_key>
type LoginRateLimiter struct {
	client *redis.Client
}

// NewLoginRateLimiter creates a LoginRateLimiter wrapping the given Redis
// client.
func NewLoginRateLimiter(client *redis.Client) *LoginRateLimiter {
	return &LoginRateLimiter{client: client}
}

// Allow increments the attempt counter and reports whether this attempt is
// still within the window budget. The first attempt in a window arms the
// expiry.
func (l *LoginRateLimiter) Allow(ctx context.Context, portal, naturalKey string) (bool, error) {
	key := l.key(portal, naturalKey)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, loginWindow).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= maxLoginAttempts, nil
}

// Reset clears the counter after a successful login.
func (l *LoginRateLimiter) Reset(ctx context.Context, portal, naturalKey string) error {
	return l.client.Del(ctx, l.key(portal, naturalKey)).Err()
}

func (l *LoginRateLimiter) key(portal, naturalKey string) string {
	return fmt.Sprintf("login_attempts:%s:%s", portal, naturalKey)
}
