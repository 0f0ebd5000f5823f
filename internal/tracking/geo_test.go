package tracking_test

import (
	"math"
	"testing"

	"github.com/SergeyBogomolovv/order-tracking/internal/entities"
	"github.com/SergeyBogomolovv/order-tracking/internal/tracking"
	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	testCases := []struct {
		name  string
		a, b  entities.Coordinates
		want  float64
		delta float64
	}{
		{
			name: "same point",
			a:    entities.Coordinates{Latitude: 55.7558, Longitude: 37.6173},
			b:    entities.Coordinates{Latitude: 55.7558, Longitude: 37.6173},
			want: 0,
		},
		{
			name:  "one degree of latitude",
			a:     entities.Coordinates{Latitude: 0, Longitude: 0},
			b:     entities.Coordinates{Latitude: 1, Longitude: 0},
			want:  111.195,
			delta: 0.01,
		},
		{
			name:  "moscow to saint petersburg",
			a:     entities.Coordinates{Latitude: 55.7558, Longitude: 37.6173},
			b:     entities.Coordinates{Latitude: 59.9343, Longitude: 30.3351},
			want:  634,
			delta: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tracking.Haversine(tc.a, tc.b), tc.delta)
			assert.InDelta(t, tc.want, tracking.Haversine(tc.b, tc.a), tc.delta)
		})
	}
}

func TestValidCoordinates(t *testing.T) {
	testCases := []struct {
		name string
		c    *entities.Coordinates
		want bool
	}{
		{name: "nil", c: nil, want: false},
		{name: "ok", c: &entities.Coordinates{Latitude: 41.3, Longitude: 69.2}, want: true},
		{name: "nan", c: &entities.Coordinates{Latitude: math.NaN(), Longitude: 1}, want: false},
		{name: "inf", c: &entities.Coordinates{Latitude: 1, Longitude: math.Inf(1)}, want: false},
		{name: "latitude out of range", c: &entities.Coordinates{Latitude: 91, Longitude: 0}, want: false},
		{name: "longitude out of range", c: &entities.Coordinates{Latitude: 0, Longitude: -181}, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tracking.ValidCoordinates(tc.c))
		})
	}
}
