package tracking

import "github.com/SergeyBogomolovv/order-tracking/internal/entities"

// sequence is the linear delivery lifecycle rendered on the timeline.
// cancelled and failed_delivery are side-branches and never appear as steps.
var sequence = []entities.Status{
	entities.StatusProcessing,
	entities.StatusReadyForPickup,
	entities.StatusAssignedToDriver,
	entities.StatusPickedUp,
	entities.StatusOutForDelivery,
	entities.StatusDelivered,
}

var labels = map[entities.Status]string{
	entities.StatusProcessing:       "Processing",
	entities.StatusReadyForPickup:   "Ready for pickup",
	entities.StatusAssignedToDriver: "Driver assigned",
	entities.StatusPickedUp:         "Picked up",
	entities.StatusOutForDelivery:   "Out for delivery",
	entities.StatusDelivered:        "Delivered",
	entities.StatusCancelled:        "Cancelled",
	entities.StatusFailedDelivery:   "Delivery failed",
}

var phrases = map[entities.Status]string{
	entities.StatusProcessing:       "Your order is being prepared",
	entities.StatusReadyForPickup:   "Waiting for a driver at the store",
	entities.StatusAssignedToDriver: "Driver is heading to the store",
	entities.StatusPickedUp:         "Driver has picked up your order",
	entities.StatusOutForDelivery:   "On the way to your address",
	entities.StatusDelivered:        "Delivered to your address",
	entities.StatusCancelled:        "Order cancelled",
	entities.StatusFailedDelivery:   "Delivery attempt failed",
}

var refreshSeconds = map[entities.Status]int{
	entities.StatusProcessing:       120,
	entities.StatusReadyForPickup:   120,
	entities.StatusAssignedToDriver: 60,
	entities.StatusPickedUp:         60,
	entities.StatusOutForDelivery:   30,
}

// Label returns the customer-facing label for a status. Unknown codes are returned unchanged.
func Label(status entities.Status) string {
	if l, ok := labels[status]; ok {
		return l
	}
	return string(status)
}

// Phrase describes where the order is right now, or "" for unknown statuses.
func Phrase(status entities.Status) string {
	return phrases[status]
}

// RefreshInterval suggests how often a client should poll for updates.
// Terminal and unknown statuses have no interval.
func RefreshInterval(status entities.Status) (int, bool) {
	s, ok := refreshSeconds[status]
	return s, ok
}

// StepIndex returns the position of status in the delivery sequence.
func StepIndex(status entities.Status) (int, bool) {
	for i, s := range sequence {
		if s == status {
			return i, true
		}
	}
	return 0, false
}

// Known reports whether status is one of the recognized codes.
func Known(status entities.Status) bool {
	_, ok := labels[status]
	return ok
}
