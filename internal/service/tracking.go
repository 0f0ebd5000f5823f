package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/order-tracking/internal/entities"
	"github.com/SergeyBogomolovv/order-tracking/internal/tracking"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// TrackingEndpoint is the default rate limit key of the public tracking lookup.
const TrackingEndpoint = "track-order"

type TrackingRepo interface {
	OrderByDisplayID(ctx context.Context, displayID string) (entities.Order, error)
	StatusHistory(ctx context.Context, orderID string) ([]entities.StatusEvent, error)
	DeliveryAttempts(ctx context.Context, orderID string) ([]entities.DeliveryAttempt, error)
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Estimator interface {
	Estimate(ctx context.Context, order entities.Order, now time.Time) (tracking.Estimate, bool)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type trackingService struct {
	logger    *slog.Logger
	tracer    trace.Tracer
	repo      TrackingRepo
	limiter   RateLimiter
	estimator Estimator
	cache     Cache
	now       func() time.Time
	limitKey  string
}

type Option func(*trackingService)

// WithClock overrides the time source used for generatedAt and ETAs.
func WithClock(now func() time.Time) Option {
	return func(s *trackingService) {
		s.now = now
	}
}

// WithRateLimitKey sets the key shared by all lookups in the rate limiter.
func WithRateLimitKey(key string) Option {
	return func(s *trackingService) {
		s.limitKey = key
	}
}

func NewTrackingService(
	logger *slog.Logger,
	repo TrackingRepo,
	limiter RateLimiter,
	estimator Estimator,
	cache Cache,
	opts ...Option,
) *trackingService {
	s := &trackingService{
		logger:    logger.With(slog.String("service", "tracking")),
		tracer:    otel.Tracer("order-tracking/service"),
		repo:      repo,
		limiter:   limiter,
		estimator: estimator,
		cache:     cache,
		now:       time.Now,
		limitKey:  TrackingEndpoint,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TrackOrder builds the customer-facing tracking view of an order. It never mutates data
// and never retries; orderNumber is expected to be validated by the caller.
func (s *trackingService) TrackOrder(ctx context.Context, orderNumber string) (entities.Tracking, error) {
	ctx, span := s.tracer.Start(ctx, "TrackOrder", trace.WithAttributes(
		attribute.String("order.number", orderNumber),
	))
	defer span.End()

	allowed, err := s.limiter.Allow(ctx, s.limitKey)
	if err != nil {
		// лимитер недоступен: пропускаем запрос, а не роняем трекинг
		s.logger.WarnContext(ctx, "rate limiter unavailable", slog.Any("error", err))
		allowed = true
	}
	if !allowed {
		span.SetAttributes(attribute.Bool("rate_limited", true))
		return entities.Tracking{}, entities.ErrRateLimited
	}

	if data, ok := s.cache.Get(orderNumber); ok {
		var t entities.Tracking
		if err := t.Unmarshal(data); err == nil {
			span.SetAttributes(attribute.Bool("cache_hit", true))
			return t, nil
		}
		s.logger.WarnContext(ctx, "failed to unmarshal cached tracking", slog.String("order_number", orderNumber))
	}

	t, err := s.build(ctx, orderNumber)
	if err != nil {
		if !errors.Is(err, entities.ErrOrderNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "lookup failed")
		}
		return entities.Tracking{}, err
	}

	data, err := t.Marshal()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal tracking", slog.Any("error", err))
		return t, nil
	}
	s.cache.Set(orderNumber, data)
	return t, nil
}

// Invalidate drops the cached view of an order so the next lookup sees fresh data.
func (s *trackingService) Invalidate(orderNumber string) {
	s.cache.Delete(orderNumber)
}

func (s *trackingService) build(ctx context.Context, orderNumber string) (entities.Tracking, error) {
	order, err := s.repo.OrderByDisplayID(ctx, orderNumber)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Tracking{}, err
	}
	if err != nil {
		return entities.Tracking{}, fmt.Errorf("failed to get order: %w", err)
	}

	var (
		history  []entities.StatusEvent
		attempts []entities.DeliveryAttempt
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		history, err = s.repo.StatusHistory(gctx, order.ID)
		if err != nil {
			return fmt.Errorf("failed to get status history: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		attempts, err = s.repo.DeliveryAttempts(gctx, order.ID)
		if err != nil {
			return fmt.Errorf("failed to get delivery attempts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return entities.Tracking{}, err
	}

	slices.SortStableFunc(attempts, func(a, b entities.DeliveryAttempt) int {
		return a.AttemptedAt.Compare(b.AttemptedAt)
	})

	now := s.now()
	t := entities.Tracking{
		GeneratedAt:     now,
		OrderNumber:     order.DisplayID,
		Status:          tracking.Label(order.Status),
		RawStatus:       order.Status,
		CurrentLocation: tracking.Phrase(order.Status),
		Steps:           tracking.BuildTimeline(order.Status, history),
		Attempts:        attempts,
		DeliveryAddress: order.Destination,
	}

	if est, ok := s.estimator.Estimate(ctx, order, now); ok {
		t.EstimatedDelivery = est.At
		t.ETAMinutes = est.Minutes
		t.ETAConfidence = string(est.Confidence)
		t.ETASource = est.Tier
	}

	if sec, ok := tracking.RefreshInterval(order.Status); ok {
		t.RefreshSuggestedSeconds = &sec
	}

	return t, nil
}
