package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const throttleKeyPrefix = "login:fail:"

// LoginThrottle counts failed login attempts per email in Redis and locks
// the email out for the remainder of the window once the limit is reached.
// A nil client disables throttling.
type LoginThrottle struct {
	client *redis.Client
	max    int
	window time.Duration
}

// NewLoginThrottle builds a throttle.
func NewLoginThrottle(client *redis.Client, max int, window time.Duration) *LoginThrottle {
	if max <= 0 {
		max = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginThrottle{client: client, max: max, window: window}
}

// Allow reports whether the email is still under the failure limit.
// Redis outages fail open so logins are not blocked by a cache dependency.
func (t *LoginThrottle) Allow(ctx context.Context, email string) bool {
	if t == nil || t.client == nil {
		return true
	}
	count, err := t.client.Get(ctx, throttleKeyPrefix+email).Int()
	if err != nil {
		return true
	}
	return count < t.max
}

// RecordFailure increments the failure counter, starting the window on the
// first failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) {
	if t == nil || t.client == nil {
		return
	}
	key := throttleKeyPrefix + email
	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return
	}
	if count == 1 {
		t.client.Expire(ctx, key, t.window)
	}
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) {
	if t == nil || t.client == nil {
		return
	}
	t.client.Del(ctx, throttleKeyPrefix+email)
}
