package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T, limit int, window time.Duration) (*Redis, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	limiter, err := NewRedis("redis://"+mr.Addr(), limit, window)
	require.NoError(t, err)
	t.Cleanup(func() { limiter.Close() })

	return limiter, mr
}

func TestRedis_Allow(t *testing.T) {
	limiter, _ := newTestRedis(t, 3, 10*time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "track-order")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}

	ok, err := limiter.Allow(ctx, "track-order")
	require.NoError(t, err)
	assert.False(t, ok)

	// другой ключ считается отдельно
	ok, err = limiter.Allow(ctx, "other-endpoint")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedis_WindowExpires(t *testing.T) {
	limiter, mr := newTestRedis(t, 1, 10*time.Minute)
	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "track-order")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "track-order")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 10*time.Minute, mr.TTL("ratelimit:track-order"))

	mr.FastForward(11 * time.Minute)

	ok, err = limiter.Allow(ctx, "track-order")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedis_ConcurrentCallers(t *testing.T) {
	limiter, _ := newTestRedis(t, 60, 10*time.Minute)
	ctx := context.Background()

	var allowed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := limiter.Allow(ctx, "track-order")
			if err == nil && ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(60), allowed.Load())
}

func TestRedis_Ping(t *testing.T) {
	limiter, _ := newTestRedis(t, 1, time.Minute)
	assert.NoError(t, limiter.Ping(context.Background()))
}

func TestNewRedis_InvalidURL(t *testing.T) {
	_, err := NewRedis("invalid://url", 1, time.Minute)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}
