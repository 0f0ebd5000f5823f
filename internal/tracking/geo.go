package tracking

import (
	"math"

	"github.com/SergeyBogomolovv/order-tracking/internal/entities"
)

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometres on a spherical Earth.
// Inputs must be finite; see ValidCoordinates.
func Haversine(a, b entities.Coordinates) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func ValidCoordinates(c *entities.Coordinates) bool {
	if c == nil {
		return false
	}
	if !finite(c.Latitude) || !finite(c.Longitude) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
