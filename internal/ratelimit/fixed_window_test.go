package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, limit int) (*FixedWindowLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l, err := NewFixedWindowLimiter(client, "test:ratelimit", limit, time.Minute)
	require.NoError(t, err)
	return l, mr
}

func TestFixedWindowLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	l, _ := newLimiter(t, 2)
	now := time.Date(2026, 1, 1, 10, 0, 30, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow(ctx, "ip-1"))
	assert.True(t, l.Allow(ctx, "ip-1"))
	assert.False(t, l.Allow(ctx, "ip-1"))

	assert.True(t, l.Allow(ctx, "ip-2"))
}

func TestFixedWindowLimiter_NextWindow(t *testing.T) {
	ctx := context.Background()
	l, _ := newLimiter(t, 1)

	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return base }
	assert.True(t, l.Allow(ctx, "ip-1"))
	assert.False(t, l.Allow(ctx, "ip-1"))

	l.now = func() time.Time { return base.Add(time.Minute) }
	assert.True(t, l.Allow(ctx, "ip-1"))
}

func TestFixedWindowLimiter_FailClosed(t *testing.T) {
	ctx := context.Background()
	l, mr := newLimiter(t, 5)
	mr.Close()

	assert.False(t, l.Allow(ctx, "ip-1"))
}

func TestNewFixedWindowLimiter_Invalid(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })

	_, err := NewFixedWindowLimiter(client, "", 0, time.Minute)
	require.Error(t, err)

	_, err = NewFixedWindowLimiter(nil, "", 1, time.Minute)
	require.Error(t, err)
}
