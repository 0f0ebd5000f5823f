package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

type Status string

const (
	StatusProcessing       Status = "processing"
	StatusReadyForPickup   Status = "ready_for_pickup"
	StatusAssignedToDriver Status = "assigned_to_driver"
	StatusPickedUp         Status = "picked_up"
	StatusOutForDelivery   Status = "out_for_delivery"
	StatusDelivered        Status = "delivered"
	StatusCancelled        Status = "cancelled"
	StatusFailedDelivery   Status = "failed_delivery"
)

// Final reports whether the order can no longer change.
func (s Status) Final() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type Address struct {
	Address         string
	Address2        string
	City            string
	District        string
	PostalCode      string
	CountryCode     string
	GeocodedAddress string
	Coordinates     *Coordinates
}

type Order struct {
	ID        string
	DisplayID string
	Status    Status
	DriverID  string

	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
	FailedAt    *time.Time
	CreatedAt   time.Time

	// из metadata заказа, оба поля могут отсутствовать
	Destination     *Address
	WarehouseOrigin *Coordinates
}

type StatusEvent struct {
	ID        string
	OrderID   string
	Status    Status
	CreatedAt time.Time
}

// StatusChange is a backend status-update event for a single order.
// AttemptStatus only matters for failed_delivery.
type StatusChange struct {
	Event         StatusEvent
	AttemptStatus string
}

type DeliveryAttempt struct {
	Status      string
	AttemptedAt time.Time
}

type DriverLocation struct {
	DriverID    string
	Coordinates Coordinates
	RecordedAt  time.Time
}

type TrackingStep struct {
	Status    Status
	Title     string
	Completed bool
	Current   bool
	Date      *time.Time
}

// Tracking is the customer-facing view of an order's delivery. It never carries payment data.
type Tracking struct {
	GeneratedAt time.Time
	OrderNumber string
	Status      string
	RawStatus   Status

	EstimatedDelivery       *time.Time
	ETAMinutes              *int
	ETAConfidence           string
	ETASource               string
	RefreshSuggestedSeconds *int

	CurrentLocation string
	Steps           []TrackingStep
	Attempts        []DeliveryAttempt
	DeliveryAddress *Address
}

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrOrderFinalized         = errors.New("order is finalized")
	ErrRateLimited            = errors.New("rate limit exceeded")
	ErrDriverLocationNotFound = errors.New("driver location not found")
)

func (t *Tracking) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t *Tracking) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(t)
}

func init() {
	gob.Register(Tracking{})
	gob.Register(TrackingStep{})
	gob.Register(DeliveryAttempt{})
	gob.Register(Address{})
}
