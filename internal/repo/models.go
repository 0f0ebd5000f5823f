package repo

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/order-tracking/internal/entities"
)

type Order struct {
	ID          string         `db:"id"`
	DisplayID   string         `db:"display_id"`
	Status      string         `db:"status"`
	DriverID    sql.NullString `db:"driver_id"`
	AssignedAt  sql.NullTime   `db:"assigned_at"`
	PickedUpAt  sql.NullTime   `db:"picked_up_at"`
	DeliveredAt sql.NullTime   `db:"delivered_at"`
	CancelledAt sql.NullTime   `db:"cancelled_at"`
	FailedAt    sql.NullTime   `db:"failed_at"`
	Metadata    []byte         `db:"metadata"`
	CreatedAt   time.Time      `db:"created_at"`
}

type StatusEvent struct {
	ID        string    `db:"id"`
	OrderID   string    `db:"order_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type DeliveryAttempt struct {
	Status      string    `db:"status"`
	AttemptedAt time.Time `db:"attempted_at"`
}

type DriverLocation struct {
	DriverID   string          `db:"driver_id"`
	Latitude   sql.NullFloat64 `db:"latitude"`
	Longitude  sql.NullFloat64 `db:"longitude"`
	RecordedAt time.Time       `db:"recorded_at"`
}

// orderMetadata mirrors the metadata jsonb column written by checkout.
type orderMetadata struct {
	DeliveryAddress *addressMetadata `json:"delivery_address"`
	WarehouseOrigin *pointMetadata   `json:"warehouse_origin"`
}

type addressMetadata struct {
	Address         string     `json:"address"`
	Address2        string     `json:"address_2"`
	City            string     `json:"city"`
	District        string     `json:"district"`
	PostalCode      string     `json:"postal_code"`
	CountryCode     string     `json:"country_code"`
	GeocodedAddress string     `json:"geocoded_address"`
	Latitude        coordinate `json:"latitude"`
	Longitude       coordinate `json:"longitude"`
}

type pointMetadata struct {
	Latitude  coordinate `json:"latitude"`
	Longitude coordinate `json:"longitude"`
}

// coordinate accepts a JSON number or a numeric string. Anything else, NaN and Inf included, leaves it unset.
type coordinate struct {
	Value float64
	Valid bool
}

func (c *coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*c = coordinate{}
		return nil
	}
	*c = coordinate{Value: f, Valid: true}
	return nil
}

func pointToEntity(lat, lon coordinate) *entities.Coordinates {
	if !lat.Valid || !lon.Valid {
		return nil
	}
	return &entities.Coordinates{Latitude: lat.Value, Longitude: lon.Value}
}

func OrderToEntity(o Order) (entities.Order, error) {
	order := entities.Order{
		ID:          o.ID,
		DisplayID:   o.DisplayID,
		Status:      entities.Status(o.Status),
		DriverID:    nullStringToString(o.DriverID),
		AssignedAt:  nullTimeToPtr(o.AssignedAt),
		PickedUpAt:  nullTimeToPtr(o.PickedUpAt),
		DeliveredAt: nullTimeToPtr(o.DeliveredAt),
		CancelledAt: nullTimeToPtr(o.CancelledAt),
		FailedAt:    nullTimeToPtr(o.FailedAt),
		CreatedAt:   o.CreatedAt,
	}

	if len(o.Metadata) == 0 {
		return order, nil
	}

	var meta orderMetadata
	if err := json.Unmarshal(o.Metadata, &meta); err != nil {
		return entities.Order{}, err
	}

	if a := meta.DeliveryAddress; a != nil {
		order.Destination = &entities.Address{
			Address:         a.Address,
			Address2:        a.Address2,
			City:            a.City,
			District:        a.District,
			PostalCode:      a.PostalCode,
			CountryCode:     a.CountryCode,
			GeocodedAddress: a.GeocodedAddress,
			Coordinates:     pointToEntity(a.Latitude, a.Longitude),
		}
	}
	if w := meta.WarehouseOrigin; w != nil {
		order.WarehouseOrigin = pointToEntity(w.Latitude, w.Longitude)
	}

	return order, nil
}

func StatusEventToEntity(e StatusEvent) entities.StatusEvent {
	return entities.StatusEvent{
		ID:        e.ID,
		OrderID:   e.OrderID,
		Status:    entities.Status(e.Status),
		CreatedAt: e.CreatedAt,
	}
}

func DeliveryAttemptToEntity(a DeliveryAttempt) entities.DeliveryAttempt {
	return entities.DeliveryAttempt{
		Status:      a.Status,
		AttemptedAt: a.AttemptedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}
