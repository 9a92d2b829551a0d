package distance

import (
	"fmt"

	"delivery-scheduler/internal/domain"
	"delivery-scheduler/internal/geo"
	"delivery-scheduler/internal/ports"
)

// EuclideanEstimator derives travel legs from plane geometry and a
// fixed average circulation speed. It is the production implementation
// of the TravelEstimator port: the whole simulation runs on straight
// lines, so no external routing service is involved.
type EuclideanEstimator struct {
	SpeedKmh float64
}

func NewEuclideanEstimator(speedKmh float64) (*EuclideanEstimator, error) {
	if speedKmh <= 0 {
		return nil, fmt.Errorf("euclidean estimator: speed must be positive, got %g", speedKmh)
	}
	return &EuclideanEstimator{SpeedKmh: speedKmh}, nil
}

// Estimate returns the straight-line leg between two points.
func (e *EuclideanEstimator) Estimate(from, to domain.Point) ports.Leg {
	km := geo.Distance(from, to)
	return ports.Leg{
		DistanceKm: km,
		TravelMin:  geo.TravelTime(km, e.SpeedKmh),
	}
}
