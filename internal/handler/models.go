package handler

import (
	"strings"
	"time"

	"github.com/SergeyBogomolovv/order-tracking/internal/entities"
	"github.com/google/uuid"
)

// TrackOrderRequest запрос на отслеживание заказа
type TrackOrderRequest struct {
	OrderNumber string `json:"orderNumber" validate:"required,min=3,max=20,order_number" example:"GU123456789"`
}

// Tracking представляет статус доставки заказа
type Tracking struct {
	GeneratedAt             time.Time         `json:"generatedAt"`
	OrderNumber             string            `json:"orderNumber" example:"GU123456789"`
	Status                  string            `json:"status" example:"Out for delivery"`
	RawStatus               string            `json:"rawStatus" example:"out_for_delivery"`
	EstimatedDelivery       *time.Time        `json:"estimatedDelivery"`
	ETAMinutes              *int              `json:"etaMinutes" example:"29"`
	ETAConfidence           *string           `json:"etaConfidence" enums:"high,medium,low"`
	ETASource               *string           `json:"etaSource" enums:"delivered,live_driver,warehouse,static_default"`
	RefreshSuggestedSeconds *int              `json:"refreshSuggestedSeconds" example:"30"`
	CurrentLocation         string            `json:"currentLocation" example:"On the way to your address"`
	Steps                   []Step            `json:"steps"`
	Attempts                []DeliveryAttempt `json:"attempts"`
	DeliveryAddress         *DeliveryAddress  `json:"deliveryAddress"`
}

// Step шаг таймлайна доставки
type Step struct {
	Status    string     `json:"status" example:"picked_up"`
	Title     string     `json:"title" example:"Picked up"`
	Completed bool       `json:"completed"`
	Current   bool       `json:"current"`
	Date      *time.Time `json:"date"`
}

// DeliveryAttempt попытка доставки
type DeliveryAttempt struct {
	Status      string    `json:"status" example:"failed"`
	AttemptedAt time.Time `json:"attempted_at"`
}

// DeliveryAddress адрес доставки без платёжных данных
type DeliveryAddress struct {
	Address         string   `json:"address"`
	Address2        string   `json:"address_2"`
	City            string   `json:"city"`
	District        string   `json:"district"`
	PostalCode      string   `json:"postal_code"`
	CountryCode     string   `json:"country_code"`
	GeocodedAddress string   `json:"geocoded_address"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

// StatusEventMessage событие смены статуса из кафки
type StatusEventMessage struct {
	EventID       string    `json:"event_id" validate:"omitempty,uuid"`
	OrderID       string    `json:"order_id" validate:"required,uuid"`
	Status        string    `json:"status" validate:"required,oneof=processing ready_for_pickup assigned_to_driver picked_up out_for_delivery delivered cancelled failed_delivery"`
	OccurredAt    time.Time `json:"occurred_at" validate:"required"`
	AttemptStatus string    `json:"attempt_status,omitempty" validate:"omitempty,max=50"`
}

func TrackingEntityToJSON(t entities.Tracking) Tracking {
	steps := make([]Step, 0, len(t.Steps))
	for _, s := range t.Steps {
		steps = append(steps, Step{
			Status:    string(s.Status),
			Title:     s.Title,
			Completed: s.Completed,
			Current:   s.Current,
			Date:      s.Date,
		})
	}

	attempts := make([]DeliveryAttempt, 0, len(t.Attempts))
	for _, a := range t.Attempts {
		attempts = append(attempts, DeliveryAttempt{
			Status:      a.Status,
			AttemptedAt: a.AttemptedAt,
		})
	}

	return Tracking{
		GeneratedAt:             t.GeneratedAt,
		OrderNumber:             t.OrderNumber,
		Status:                  t.Status,
		RawStatus:               string(t.RawStatus),
		EstimatedDelivery:       t.EstimatedDelivery,
		ETAMinutes:              t.ETAMinutes,
		ETAConfidence:           optionalString(t.ETAConfidence),
		ETASource:               optionalString(t.ETASource),
		RefreshSuggestedSeconds: t.RefreshSuggestedSeconds,
		CurrentLocation:         t.CurrentLocation,
		Steps:                   steps,
		Attempts:                attempts,
		DeliveryAddress:         AddressEntityToJSON(t.DeliveryAddress),
	}
}

func AddressEntityToJSON(a *entities.Address) *DeliveryAddress {
	if a == nil {
		return nil
	}

	res := &DeliveryAddress{
		Address:         a.Address,
		Address2:        a.Address2,
		City:            a.City,
		District:        a.District,
		PostalCode:      a.PostalCode,
		CountryCode:     a.CountryCode,
		GeocodedAddress: a.GeocodedAddress,
	}
	if a.Coordinates != nil {
		lat, lon := a.Coordinates.Latitude, a.Coordinates.Longitude
		res.Latitude = &lat
		res.Longitude = &lon
	}
	return res
}

func StatusEventJSONToEntity(m StatusEventMessage) entities.StatusChange {
	id := m.EventID
	if id == "" {
		// событие без id не дедуплицируется, но в историю попадает
		id = uuid.NewString()
	}

	return entities.StatusChange{
		Event: entities.StatusEvent{
			ID:        id,
			OrderID:   m.OrderID,
			Status:    entities.Status(m.Status),
			CreatedAt: m.OccurredAt.UTC(),
		},
		AttemptStatus: strings.TrimSpace(m.AttemptStatus),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
