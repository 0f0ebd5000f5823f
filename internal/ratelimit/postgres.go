package ratelimit

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// DB is the part of *sqlx.DB the limiter needs.
type DB interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Postgres is a fixed-window limiter. The upsert makes increment-and-check a single
// atomic statement, so concurrent callers never both squeeze in past the limit.
type Postgres struct {
	logger *slog.Logger
	db     DB
	qb     sq.StatementBuilderType
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewPostgres(logger *slog.Logger, db DB, limit int, window time.Duration) *Postgres {
	return &Postgres{
		logger: logger.With(slog.String("limiter", "postgres")),
		db:     db,
		qb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (p *Postgres) Allow(ctx context.Context, key string) (bool, error) {
	windowStart := p.now().UTC().Truncate(p.window)

	query, args := p.qb.Insert("rate_limits").
		Columns("key", "window_start", "count").
		Values(key, windowStart, 1).
		Suffix("ON CONFLICT (key, window_start) DO UPDATE SET count = rate_limits.count + 1 RETURNING count").
		MustSql()

	var count int
	if err := p.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	return count <= p.limit, nil
}

// Cleanup removes windows that ended before now. Old rows never affect decisions,
// they only take space.
func (p *Postgres) Cleanup(ctx context.Context) (int64, error) {
	cutoff := p.now().UTC().Truncate(p.window)

	query, args := p.qb.Delete("rate_limits").
		Where(sq.Lt{"window_start": cutoff}).
		MustSql()

	res, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup rate limits: %w", err)
	}
	return res.RowsAffected()
}

// Start removes stale windows once per window until ctx is done.
func (p *Postgres) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(p.window)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := p.Cleanup(ctx)
				if err != nil {
					p.logger.Warn("rate limit cleanup failed", slog.Any("error", err))
					continue
				}
				p.logger.Debug("rate limit windows removed", slog.Int64("count", n))
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}
