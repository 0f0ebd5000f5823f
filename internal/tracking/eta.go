package tracking

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/SergeyBogomolovv/order-tracking/internal/entities"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

const (
	TierDelivered     = "delivered"
	TierLiveDriver    = "live_driver"
	TierWarehouse     = "warehouse"
	TierStaticDefault = "static_default"
)

const (
	liveSpeedKmh      = 25.0
	liveBufferMinutes = 5
	liveMinMinutes    = 1

	warehouseSpeedKmh      = 20.0
	warehouseBufferMinutes = 10
	warehouseMinMinutes    = 10

	freshLocationAge = 10 * time.Minute
	staleLocationAge = 30 * time.Minute
)

var staticMinutes = map[entities.Status]int{
	entities.StatusOutForDelivery:   45,
	entities.StatusPickedUp:         30,
	entities.StatusAssignedToDriver: 90,
}

// Estimate is the outcome of a single tier. Minutes and Confidence are empty for delivered orders.
type Estimate struct {
	Tier       string
	At         *time.Time
	Minutes    *int
	Confidence Confidence
}

// Tier is one strategy of the ETA waterfall. ok is false when the tier has nothing to say.
type Tier interface {
	Name() string
	Estimate(ctx context.Context, order entities.Order, now time.Time) (est Estimate, ok bool)
}

type DriverLocator interface {
	DriverLocation(ctx context.Context, driverID string) (entities.DriverLocation, error)
}

// Estimator tries its tiers in order; the first estimate wins.
type Estimator struct {
	tiers []Tier
}

func NewEstimator(logger *slog.Logger, locator DriverLocator) *Estimator {
	return NewEstimatorWithTiers(
		AlreadyDelivered{},
		NewLiveDriverTier(logger, locator),
		WarehouseTier{},
		StaticDefaultTier{},
	)
}

func NewEstimatorWithTiers(tiers ...Tier) *Estimator {
	return &Estimator{tiers: tiers}
}

func (e *Estimator) Estimate(ctx context.Context, order entities.Order, now time.Time) (Estimate, bool) {
	for _, t := range e.tiers {
		if est, ok := t.Estimate(ctx, order, now); ok {
			est.Tier = t.Name()
			return est, true
		}
	}
	return Estimate{}, false
}

type AlreadyDelivered struct{}

func (AlreadyDelivered) Name() string { return TierDelivered }

func (AlreadyDelivered) Estimate(_ context.Context, order entities.Order, _ time.Time) (Estimate, bool) {
	if order.Status != entities.StatusDelivered {
		return Estimate{}, false
	}
	// заказ доставлен, дальше по цепочке не идём даже без delivered_at
	return Estimate{At: order.DeliveredAt}, true
}

type LiveDriverTier struct {
	logger  *slog.Logger
	locator DriverLocator
}

func NewLiveDriverTier(logger *slog.Logger, locator DriverLocator) LiveDriverTier {
	return LiveDriverTier{
		logger:  logger.With(slog.String("eta_tier", TierLiveDriver)),
		locator: locator,
	}
}

func (LiveDriverTier) Name() string { return TierLiveDriver }

func (t LiveDriverTier) Estimate(ctx context.Context, order entities.Order, now time.Time) (Estimate, bool) {
	if !inTransit(order.Status) || order.DriverID == "" || order.Destination == nil {
		return Estimate{}, false
	}
	if !ValidCoordinates(order.Destination.Coordinates) {
		return Estimate{}, false
	}

	loc, err := t.locator.DriverLocation(ctx, order.DriverID)
	if errors.Is(err, entities.ErrDriverLocationNotFound) {
		return Estimate{}, false
	}
	if err != nil {
		t.logger.WarnContext(ctx, "failed to get driver location",
			slog.Any("error", err), slog.String("driver_id", order.DriverID))
		return Estimate{}, false
	}
	if !ValidCoordinates(&loc.Coordinates) {
		return Estimate{}, false
	}

	km := Haversine(loc.Coordinates, *order.Destination.Coordinates)
	minutes := max(travelMinutes(km, liveSpeedKmh)+liveBufferMinutes, liveMinMinutes)

	return newEstimate(now, minutes, freshness(now.Sub(loc.RecordedAt))), true
}

type WarehouseTier struct{}

func (WarehouseTier) Name() string { return TierWarehouse }

func (WarehouseTier) Estimate(_ context.Context, order entities.Order, now time.Time) (Estimate, bool) {
	if !inTransit(order.Status) || order.Destination == nil {
		return Estimate{}, false
	}
	if !ValidCoordinates(order.WarehouseOrigin) || !ValidCoordinates(order.Destination.Coordinates) {
		return Estimate{}, false
	}

	km := Haversine(*order.WarehouseOrigin, *order.Destination.Coordinates)
	minutes := max(travelMinutes(km, warehouseSpeedKmh)+warehouseBufferMinutes, warehouseMinMinutes)

	return newEstimate(now, minutes, ConfidenceMedium), true
}

type StaticDefaultTier struct{}

func (StaticDefaultTier) Name() string { return TierStaticDefault }

func (StaticDefaultTier) Estimate(_ context.Context, order entities.Order, now time.Time) (Estimate, bool) {
	minutes, ok := staticMinutes[order.Status]
	if !ok {
		return Estimate{}, false
	}
	return newEstimate(now, minutes, ConfidenceLow), true
}

func inTransit(s entities.Status) bool {
	return s == entities.StatusAssignedToDriver || s == entities.StatusPickedUp || s == entities.StatusOutForDelivery
}

func travelMinutes(km, speedKmh float64) int {
	return int(math.Ceil(km / speedKmh * 60))
}

func freshness(age time.Duration) Confidence {
	switch {
	case age <= freshLocationAge:
		return ConfidenceHigh
	case age <= staleLocationAge:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func newEstimate(now time.Time, minutes int, c Confidence) Estimate {
	at := now.Add(time.Duration(minutes) * time.Minute)
	return Estimate{At: &at, Minutes: &minutes, Confidence: c}
}
