package geo

import (
	"math"

	"delivery-scheduler/internal/domain"
)

// Distance returns the straight-line distance between two points in
// kilometers. Coordinates are planar, not geographic.
func Distance(p1, p2 domain.Point) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}

// TravelTime converts a distance into driving minutes at the given
// average speed in km/h. The speed must be positive; callers validate
// it once at configuration time.
func TravelTime(distanceKm, speedKmh float64) float64 {
	return distanceKm / speedKmh * 60
}
