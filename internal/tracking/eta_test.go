package tracking_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-tracking/internal/entities"
	"github.com/SergeyBogomolovv/order-tracking/internal/tracking"
	"github.com/SergeyBogomolovv/order-tracking/internal/tracking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	now         = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	destination = entities.Coordinates{Latitude: 41.3111, Longitude: 69.2797}
	// ~9.95 km to the north of destination
	warehouse = entities.Coordinates{Latitude: 41.3111 + 0.0895, Longitude: 69.2797}
)

func orderWith(status entities.Status, driverID string, wh *entities.Coordinates) entities.Order {
	dst := destination
	return entities.Order{
		ID:              "order-1",
		DisplayID:       "GU123456789",
		Status:          status,
		DriverID:        driverID,
		Destination:     &entities.Address{Address: "Amir Temur 1", Coordinates: &dst},
		WarehouseOrigin: wh,
	}
}

func newEstimator(t *testing.T) (*tracking.Estimator, *mocks.MockDriverLocator) {
	locator := mocks.NewMockDriverLocator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return tracking.NewEstimator(logger, locator), locator
}

func TestEstimator_LiveDriverConfidence(t *testing.T) {
	testCases := []struct {
		name string
		age  time.Duration
		want tracking.Confidence
	}{
		{name: "5 minutes old", age: 5 * time.Minute, want: tracking.ConfidenceHigh},
		{name: "exactly 10 minutes old", age: 10 * time.Minute, want: tracking.ConfidenceHigh},
		{name: "20 minutes old", age: 20 * time.Minute, want: tracking.ConfidenceMedium},
		{name: "40 minutes old", age: 40 * time.Minute, want: tracking.ConfidenceLow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			est, locator := newEstimator(t)
			locator.EXPECT().
				DriverLocation(mock.Anything, "driver-7").
				Return(entities.DriverLocation{
					DriverID:    "driver-7",
					Coordinates: warehouse,
					RecordedAt:  now.Add(-tc.age),
				}, nil).Once()

			got, ok := est.Estimate(context.Background(), orderWith(entities.StatusOutForDelivery, "driver-7", nil), now)
			require.True(t, ok)
			assert.Equal(t, tracking.TierLiveDriver, got.Tier)
			assert.Equal(t, tc.want, got.Confidence)

			// ceil(9.95/25*60) + 5
			require.NotNil(t, got.Minutes)
			assert.Equal(t, 29, *got.Minutes)
			require.NotNil(t, got.At)
			assert.Equal(t, now.Add(29*time.Minute), *got.At)
		})
	}
}

func TestEstimator_LiveDriverMinimum(t *testing.T) {
	est, locator := newEstimator(t)
	locator.EXPECT().
		DriverLocation(mock.Anything, "driver-7").
		Return(entities.DriverLocation{Coordinates: destination, RecordedAt: now}, nil).Once()

	got, ok := est.Estimate(context.Background(), orderWith(entities.StatusOutForDelivery, "driver-7", nil), now)
	require.True(t, ok)
	assert.Equal(t, 5, *got.Minutes)
}

func TestEstimator_Fallbacks(t *testing.T) {
	wh := warehouse

	testCases := []struct {
		name           string
		order          entities.Order
		mockBehavior   func(locator *mocks.MockDriverLocator)
		wantOK         bool
		wantTier       string
		wantMinutes    int
		wantConfidence tracking.Confidence
	}{
		{
			name:  "no driver location falls back to warehouse",
			order: orderWith(entities.StatusPickedUp, "driver-7", &wh),
			mockBehavior: func(locator *mocks.MockDriverLocator) {
				locator.EXPECT().DriverLocation(mock.Anything, "driver-7").
					Return(entities.DriverLocation{}, entities.ErrDriverLocationNotFound).Once()
			},
			wantOK:         true,
			wantTier:       tracking.TierWarehouse,
			wantMinutes:    40,
			wantConfidence: tracking.ConfidenceMedium,
		},
		{
			name:  "locator failure degrades silently",
			order: orderWith(entities.StatusPickedUp, "driver-7", &wh),
			mockBehavior: func(locator *mocks.MockDriverLocator) {
				locator.EXPECT().DriverLocation(mock.Anything, "driver-7").
					Return(entities.DriverLocation{}, errors.New("connection reset")).Once()
			},
			wantOK:         true,
			wantTier:       tracking.TierWarehouse,
			wantMinutes:    40,
			wantConfidence: tracking.ConfidenceMedium,
		},
		{
			name:           "no driver assigned skips live tier",
			order:          orderWith(entities.StatusPickedUp, "", &wh),
			mockBehavior:   func(_ *mocks.MockDriverLocator) {},
			wantOK:         true,
			wantTier:       tracking.TierWarehouse,
			wantMinutes:    40,
			wantConfidence: tracking.ConfidenceMedium,
		},
		{
			name:           "no coordinates at all falls back to static default",
			order:          orderWith(entities.StatusOutForDelivery, "", nil),
			mockBehavior:   func(_ *mocks.MockDriverLocator) {},
			wantOK:         true,
			wantTier:       tracking.TierStaticDefault,
			wantMinutes:    45,
			wantConfidence: tracking.ConfidenceLow,
		},
		{
			name:           "static default for assigned driver",
			order:          orderWith(entities.StatusAssignedToDriver, "", nil),
			mockBehavior:   func(_ *mocks.MockDriverLocator) {},
			wantOK:         true,
			wantTier:       tracking.TierStaticDefault,
			wantMinutes:    90,
			wantConfidence: tracking.ConfidenceLow,
		},
		{
			name:         "processing has no estimate",
			order:        orderWith(entities.StatusProcessing, "driver-7", &wh),
			mockBehavior: func(_ *mocks.MockDriverLocator) {},
			wantOK:       false,
		},
		{
			name:         "cancelled has no estimate",
			order:        orderWith(entities.StatusCancelled, "driver-7", &wh),
			mockBehavior: func(_ *mocks.MockDriverLocator) {},
			wantOK:       false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			est, locator := newEstimator(t)
			tc.mockBehavior(locator)

			got, ok := est.Estimate(context.Background(), tc.order, now)
			require.Equal(t, tc.wantOK, ok)
			if !tc.wantOK {
				return
			}

			assert.Equal(t, tc.wantTier, got.Tier)
			assert.Equal(t, tc.wantConfidence, got.Confidence)
			require.NotNil(t, got.Minutes)
			assert.Equal(t, tc.wantMinutes, *got.Minutes)
			assert.Equal(t, now.Add(time.Duration(tc.wantMinutes)*time.Minute), *got.At)
		})
	}
}

func TestEstimator_Delivered(t *testing.T) {
	// locator без ожиданий: любой вызов провалит тест
	est, _ := newEstimator(t)
	wh := warehouse
	deliveredAt := now.Add(-2 * time.Hour)

	order := orderWith(entities.StatusDelivered, "driver-7", &wh)
	order.DeliveredAt = &deliveredAt

	got, ok := est.Estimate(context.Background(), order, now)
	require.True(t, ok)
	assert.Equal(t, tracking.TierDelivered, got.Tier)
	require.NotNil(t, got.At)
	assert.Equal(t, deliveredAt, *got.At)
	assert.Nil(t, got.Minutes)
	assert.Empty(t, got.Confidence)
}
