package ratelimit

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type windowKey struct {
	key   string
	start time.Time
}

// fakeDB ведёт себя как таблица rate_limits с upsert по (key, window_start)
type fakeDB struct {
	mu      sync.Mutex
	counts  map[windowKey]int
	queries []string
	err     error
}

func newFakeDB() *fakeDB {
	return &fakeDB{counts: make(map[windowKey]int)}
}

func (f *fakeDB) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.err != nil {
		return f.err
	}

	k := windowKey{key: args[0].(string), start: args[1].(time.Time)}
	f.counts[k]++
	*dest.(*int) = f.counts[k]
	return nil
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}

	cutoff := args[0].(time.Time)
	var n int64
	for k := range f.counts {
		if k.start.Before(cutoff) {
			delete(f.counts, k)
			n++
		}
	}
	return driver.RowsAffected(n), nil
}

func newTestPostgres(db DB, limit int, window time.Duration, now *time.Time) *Postgres {
	p := NewPostgres(slog.New(slog.NewTextHandler(io.Discard, nil)), db, limit, window)
	p.now = func() time.Time { return *now }
	return p
}

func TestPostgres_Allow(t *testing.T) {
	db := newFakeDB()
	now := time.Date(2025, 6, 1, 12, 3, 0, 0, time.UTC)
	limiter := newTestPostgres(db, 3, 10*time.Minute, &now)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "track-order")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}

	ok, err := limiter.Allow(ctx, "track-order")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = limiter.Allow(ctx, "other-endpoint")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NotEmpty(t, db.queries)
	assert.Contains(t, db.queries[0], "INSERT INTO rate_limits")
	assert.Contains(t, db.queries[0], "ON CONFLICT (key, window_start) DO UPDATE SET count = rate_limits.count + 1 RETURNING count")
	assert.Contains(t, db.queries[0], "$1")
	assert.NotContains(t, db.queries[0], "?")
}

func TestPostgres_WindowRollover(t *testing.T) {
	db := newFakeDB()
	now := time.Date(2025, 6, 1, 12, 9, 59, 0, time.UTC)
	limiter := newTestPostgres(db, 1, 10*time.Minute, &now)
	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "track-order")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "track-order")
	require.NoError(t, err)
	assert.False(t, ok)

	now = now.Add(2 * time.Second)

	ok, err = limiter.Allow(ctx, "track-order")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPostgres_AllowConcurrent(t *testing.T) {
	db := newFakeDB()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := newTestPostgres(db, 60, 10*time.Minute, &now)

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := limiter.Allow(context.Background(), "track-order")
			if err == nil && ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(60), allowed.Load())
}

func TestPostgres_AllowError(t *testing.T) {
	db := newFakeDB()
	db.err = errors.New("connection refused")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := newTestPostgres(db, 60, 10*time.Minute, &now)

	ok, err := limiter.Allow(context.Background(), "track-order")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestPostgres_Cleanup(t *testing.T) {
	db := newFakeDB()
	now := time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC)
	limiter := newTestPostgres(db, 60, 10*time.Minute, &now)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "track-order")
	require.NoError(t, err)
	_, err = limiter.Allow(ctx, "other-endpoint")
	require.NoError(t, err)

	n, err := limiter.Cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	now = now.Add(10 * time.Minute)
	_, err = limiter.Allow(ctx, "track-order")
	require.NoError(t, err)

	n, err = limiter.Cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Len(t, db.counts, 1)
	assert.Contains(t, db.queries[len(db.queries)-1], "DELETE FROM rate_limits WHERE window_start < $1")
}
