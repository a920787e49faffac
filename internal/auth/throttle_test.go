package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newThrottleClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestThrottleLocksOutAfterMaxFailures(t *testing.T) {
	ctx := context.Background()
	throttle := NewLoginThrottle(newThrottleClient(t), 3, time.Minute)

	require.True(t, throttle.Allow(ctx, "a@b.test"))
	for i := 0; i < 3; i++ {
		throttle.RecordFailure(ctx, "a@b.test")
	}
	require.False(t, throttle.Allow(ctx, "a@b.test"))

	// other emails are unaffected
	require.True(t, throttle.Allow(ctx, "c@d.test"))
}

func TestThrottleResetClearsCounter(t *testing.T) {
	ctx := context.Background()
	throttle := NewLoginThrottle(newThrottleClient(t), 2, time.Minute)

	throttle.RecordFailure(ctx, "a@b.test")
	throttle.RecordFailure(ctx, "a@b.test")
	require.False(t, throttle.Allow(ctx, "a@b.test"))

	throttle.Reset(ctx, "a@b.test")
	require.True(t, throttle.Allow(ctx, "a@b.test"))
}

func TestThrottleFailsOpenWithoutRedis(t *testing.T) {
	ctx := context.Background()
	throttle := NewLoginThrottle(nil, 1, time.Minute)

	throttle.RecordFailure(ctx, "a@b.test")
	require.True(t, throttle.Allow(ctx, "a@b.test"))

	var disabled *LoginThrottle
	require.True(t, disabled.Allow(ctx, "a@b.test"))
}

func TestThrottleFailsOpenOnRedisOutage(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	throttle := NewLoginThrottle(client, 1, time.Minute)

	throttle.RecordFailure(ctx, "a@b.test")
	mr.Close()
	require.True(t, throttle.Allow(ctx, "a@b.test"))
}
