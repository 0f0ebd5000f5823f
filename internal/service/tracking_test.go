package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-tracking/internal/entities"
	"github.com/SergeyBogomolovv/order-tracking/internal/service"
	mocks "github.com/SergeyBogomolovv/order-tracking/internal/service/mocks"
	"github.com/SergeyBogomolovv/order-tracking/internal/tracking"
	trackingMocks "github.com/SergeyBogomolovv/order-tracking/internal/tracking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	now         = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	destination = entities.Coordinates{Latitude: 41.3111, Longitude: 69.2797}
	warehouse   = entities.Coordinates{Latitude: 41.4006, Longitude: 69.2797}
)

type trackingService interface {
	TrackOrder(ctx context.Context, orderNumber string) (entities.Tracking, error)
	Invalidate(orderNumber string)
}

type deps struct {
	repo    *mocks.MockTrackingRepo
	limiter *mocks.MockRateLimiter
	cache   *mocks.MockCache
	locator *trackingMocks.MockDriverLocator
}

func newTrackingService(t *testing.T) (trackingService, deps) {
	d := deps{
		repo:    mocks.NewMockTrackingRepo(t),
		limiter: mocks.NewMockRateLimiter(t),
		cache:   mocks.NewMockCache(t),
		locator: trackingMocks.NewMockDriverLocator(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	estimator := tracking.NewEstimator(logger, d.locator)

	svc := service.NewTrackingService(logger, d.repo, d.limiter, estimator, d.cache,
		service.WithClock(func() time.Time { return now }))
	return svc, d
}

func pickedUpOrder() entities.Order {
	dst := destination
	wh := warehouse
	return entities.Order{
		ID:        "7f1c",
		DisplayID: "GU123456789",
		Status:    entities.StatusPickedUp,
		Destination: &entities.Address{
			Address:         "Amir Temur 1",
			City:            "Tashkent",
			District:        "Yunusabad",
			PostalCode:      "100000",
			CountryCode:     "UZ",
			GeocodedAddress: "Amir Temur 1, Tashkent",
			Coordinates:     &dst,
		},
		WarehouseOrigin: &wh,
	}
}

func TestTrackingService_TrackOrder(t *testing.T) {
	order := pickedUpOrder()
	history := []entities.StatusEvent{
		{OrderID: order.ID, Status: entities.StatusPickedUp, CreatedAt: now.Add(-10 * time.Minute)},
		{OrderID: order.ID, Status: entities.StatusProcessing, CreatedAt: now.Add(-60 * time.Minute)},
	}
	attempts := []entities.DeliveryAttempt{
		{Status: "customer_absent", AttemptedAt: now.Add(-5 * time.Minute)},
		{Status: "failed", AttemptedAt: now.Add(-30 * time.Minute)},
	}

	svc, d := newTrackingService(t)

	d.limiter.EXPECT().Allow(mock.Anything, service.TrackingEndpoint).Return(true, nil).Once()
	d.cache.EXPECT().Get("GU123456789").Return(nil, false).Once()
	d.repo.EXPECT().OrderByDisplayID(mock.Anything, "GU123456789").Return(order, nil).Once()
	d.repo.EXPECT().StatusHistory(mock.Anything, order.ID).Return(history, nil).Once()
	d.repo.EXPECT().DeliveryAttempts(mock.Anything, order.ID).Return(attempts, nil).Once()
	d.cache.EXPECT().Set("GU123456789", mock.Anything).Return().Once()

	got, err := svc.TrackOrder(context.Background(), "GU123456789")
	require.NoError(t, err)

	assert.Equal(t, now, got.GeneratedAt)
	assert.Equal(t, "GU123456789", got.OrderNumber)
	assert.Equal(t, "Picked up", got.Status)
	assert.Equal(t, entities.StatusPickedUp, got.RawStatus)
	assert.Equal(t, "Driver has picked up your order", got.CurrentLocation)

	// нет водителя и live-координат: склад ~10 км, ceil(10/20*60)+10
	require.NotNil(t, got.ETAMinutes)
	assert.Equal(t, 40, *got.ETAMinutes)
	assert.Equal(t, "medium", got.ETAConfidence)
	assert.Equal(t, tracking.TierWarehouse, got.ETASource)
	require.NotNil(t, got.EstimatedDelivery)
	assert.Equal(t, now.Add(40*time.Minute), *got.EstimatedDelivery)
	require.NotNil(t, got.RefreshSuggestedSeconds)
	assert.Equal(t, 60, *got.RefreshSuggestedSeconds)

	require.Len(t, got.Steps, 6)
	assert.True(t, got.Steps[2].Completed)
	assert.True(t, got.Steps[3].Current)
	require.NotNil(t, got.Steps[0].Date)
	assert.Equal(t, now.Add(-60*time.Minute), *got.Steps[0].Date)

	require.Len(t, got.Attempts, 2)
	assert.Equal(t, "failed", got.Attempts[0].Status)
	assert.Equal(t, "customer_absent", got.Attempts[1].Status)

	require.NotNil(t, got.DeliveryAddress)
	assert.Equal(t, "Tashkent", got.DeliveryAddress.City)
}

func TestTrackingService_TrackOrder_Delivered(t *testing.T) {
	deliveredAt := now.Add(-3 * time.Hour)
	order := pickedUpOrder()
	order.Status = entities.StatusDelivered
	order.DriverID = "driver-1"
	order.DeliveredAt = &deliveredAt

	svc, d := newTrackingService(t)

	d.limiter.EXPECT().Allow(mock.Anything, service.TrackingEndpoint).Return(true, nil).Once()
	d.cache.EXPECT().Get("GU123456789").Return(nil, false).Once()
	d.repo.EXPECT().OrderByDisplayID(mock.Anything, "GU123456789").Return(order, nil).Once()
	d.repo.EXPECT().StatusHistory(mock.Anything, order.ID).Return(nil, nil).Once()
	d.repo.EXPECT().DeliveryAttempts(mock.Anything, order.ID).Return(nil, nil).Once()
	d.cache.EXPECT().Set("GU123456789", mock.Anything).Return().Once()

	got, err := svc.TrackOrder(context.Background(), "GU123456789")
	require.NoError(t, err)

	require.NotNil(t, got.EstimatedDelivery)
	assert.Equal(t, deliveredAt, *got.EstimatedDelivery)
	assert.Nil(t, got.ETAMinutes)
	assert.Empty(t, got.ETAConfidence)
	assert.Nil(t, got.RefreshSuggestedSeconds)
	assert.True(t, got.Steps[5].Current)
}

func TestTrackingService_TrackOrder_Errors(t *testing.T) {
	type MockBehavior func(d deps)

	dbError := errors.New("db error")
	order := pickedUpOrder()

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "rate limited",
			mockBehavior: func(d deps) {
				d.limiter.EXPECT().Allow(mock.Anything, service.TrackingEndpoint).Return(false, nil).Once()
			},
			wantErr: entities.ErrRateLimited,
		},
		{
			name: "order not found",
			mockBehavior: func(d deps) {
				d.limiter.EXPECT().Allow(mock.Anything, service.TrackingEndpoint).Return(true, nil).Once()
				d.cache.EXPECT().Get("GU123456789").Return(nil, false).Once()
				d.repo.EXPECT().OrderByDisplayID(mock.Anything, "GU123456789").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "order lookup fails",
			mockBehavior: func(d deps) {
				d.limiter.EXPECT().Allow(mock.Anything, service.TrackingEndpoint).Return(true, nil).Once()
				d.cache.EXPECT().Get("GU123456789").Return(nil, false).Once()
				d.repo.EXPECT().OrderByDisplayID(mock.Anything, "GU123456789").
					Return(entities.Order{}, dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name: "history lookup fails",
			mockBehavior: func(d deps) {
				d.limiter.EXPECT().Allow(mock.Anything, service.TrackingEndpoint).Return(true, nil).Once()
				d.cache.EXPECT().Get("GU123456789").Return(nil, false).Once()
				d.repo.EXPECT().OrderByDisplayID(mock.Anything, "GU123456789").Return(order, nil).Once()
				d.repo.EXPECT().StatusHistory(mock.Anything, order.ID).Return(nil, dbError).Once()
				d.repo.EXPECT().DeliveryAttempts(mock.Anything, order.ID).Return(nil, nil).Maybe()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, d := newTrackingService(t)
			tc.mockBehavior(d)

			_, err := svc.TrackOrder(context.Background(), "GU123456789")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestTrackingService_TrackOrder_LimiterUnavailable(t *testing.T) {
	order := pickedUpOrder()
	svc, d := newTrackingService(t)

	d.limiter.EXPECT().Allow(mock.Anything, service.TrackingEndpoint).Return(false, errors.New("redis down")).Once()
	d.cache.EXPECT().Get("GU123456789").Return(nil, false).Once()
	d.repo.EXPECT().OrderByDisplayID(mock.Anything, "GU123456789").Return(order, nil).Once()
	d.repo.EXPECT().StatusHistory(mock.Anything, order.ID).Return(nil, nil).Once()
	d.repo.EXPECT().DeliveryAttempts(mock.Anything, order.ID).Return(nil, nil).Once()
	d.cache.EXPECT().Set("GU123456789", mock.Anything).Return().Once()

	_, err := svc.TrackOrder(context.Background(), "GU123456789")
	assert.NoError(t, err)
}

func TestTrackingService_TrackOrder_FromCache(t *testing.T) {
	cached := entities.Tracking{
		GeneratedAt: now.Add(-5 * time.Second),
		OrderNumber: "GU123456789",
		Status:      "Picked up",
		RawStatus:   entities.StatusPickedUp,
	}
	data, err := cached.Marshal()
	require.NoError(t, err)

	svc, d := newTrackingService(t)
	d.limiter.EXPECT().Allow(mock.Anything, service.TrackingEndpoint).Return(true, nil).Once()
	d.cache.EXPECT().Get("GU123456789").Return(data, true).Once()

	got, err := svc.TrackOrder(context.Background(), "GU123456789")
	require.NoError(t, err)
	assert.Equal(t, cached.OrderNumber, got.OrderNumber)
	assert.Equal(t, cached.RawStatus, got.RawStatus)
	assert.True(t, cached.GeneratedAt.Equal(got.GeneratedAt))
}

func TestTrackingService_Invalidate(t *testing.T) {
	svc, d := newTrackingService(t)
	d.cache.EXPECT().Delete("GU123456789").Return().Once()

	svc.Invalidate("GU123456789")
}

func TestTrackingService_TrackOrder_CustomLimitKey(t *testing.T) {
	limiter := mocks.NewMockRateLimiter(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := service.NewTrackingService(logger, mocks.NewMockTrackingRepo(t), limiter,
		tracking.NewEstimator(logger, trackingMocks.NewMockDriverLocator(t)), mocks.NewMockCache(t),
		service.WithRateLimitKey("track-order-v2"))

	limiter.EXPECT().Allow(mock.Anything, "track-order-v2").Return(false, nil).Once()

	_, err := svc.TrackOrder(context.Background(), "GU123456789")
	assert.ErrorIs(t, err, entities.ErrRateLimited)
}
