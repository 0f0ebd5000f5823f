package tracking_test

import (
	"testing"

	"github.com/SergeyBogomolovv/order-tracking/internal/entities"
	"github.com/SergeyBogomolovv/order-tracking/internal/tracking"
	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "Out for delivery", tracking.Label(entities.StatusOutForDelivery))
	assert.Equal(t, "Cancelled", tracking.Label(entities.StatusCancelled))
	assert.Equal(t, "awaiting_payment", tracking.Label("awaiting_payment"))
	assert.Equal(t, "", tracking.Label(""))
}

func TestPhrase(t *testing.T) {
	assert.Equal(t, "On the way to your address", tracking.Phrase(entities.StatusOutForDelivery))
	assert.Empty(t, tracking.Phrase("awaiting_payment"))
}

func TestRefreshInterval(t *testing.T) {
	s, ok := tracking.RefreshInterval(entities.StatusOutForDelivery)
	assert.True(t, ok)
	assert.Equal(t, 30, s)

	_, ok = tracking.RefreshInterval(entities.StatusDelivered)
	assert.False(t, ok)
}

func TestStepIndex(t *testing.T) {
	for want, status := range linear {
		got, ok := tracking.StepIndex(status)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	got, ok := tracking.StepIndex(entities.StatusCancelled)
	assert.False(t, ok)
	assert.Zero(t, got)
}
