package ports

import "delivery-scheduler/internal/domain"

// Distance and driving time of one point-to-point travel segment.
type Leg struct {
	DistanceKm float64
	TravelMin  float64
}

// Contract for estimating travel between two locations.
// Implementations must be pure: the scheduler calls Estimate for
// hypothetical legs it never commits.
type TravelEstimator interface {
	// Return distance and driving time from one point to another.
	Estimate(from, to domain.Point) Leg
}
