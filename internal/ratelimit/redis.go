package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KEYS[1]: counter key, ARGV[1]: window in milliseconds.
// Returns the counter value after increment.
var incrScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return count
`)

// Redis is a fixed-window limiter backed by a single expiring counter per key.
type Redis struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedis connects using a URL of the form redis://[:password@]host[:port][/database].
func NewRedis(redisURL string, limit int, window time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	return &Redis{
		client: redis.NewClient(opts),
		limit:  limit,
		window: window,
	}, nil
}

func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	count, err := incrScript.Run(ctx, r.client, []string{"ratelimit:" + key}, r.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	return count <= int64(r.limit), nil
}

func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
