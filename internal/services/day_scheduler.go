package services

import (
	"fmt"

	"delivery-scheduler/internal/domain"
	"delivery-scheduler/internal/ports"
)

// Output of a single operating day across the whole fleet.
type DayResult struct {
	Deliveries []domain.DeliveryRecord
	Metrics    []domain.DailyMetric
	Routes     []domain.RouteTrace
}

// RunDay schedules one operating day. A fresh fleet is created every
// day; vehicles run strictly in slot order, and each commit is visible
// to the next vehicle through the shared ledger.
func RunDay(
	ledger *domain.Ledger,
	estimator ports.TravelEstimator,
	p Params,
	day int,
) (*DayResult, error) {
	result := &DayResult{}

	for slot := 1; slot <= p.FleetSize; slot++ {
		vehicle := domain.NewVehicle(slot, p.Depot)

		records, err := BuildRoute(vehicle, ledger, estimator, p, day)
		if err != nil {
			return nil, fmt.Errorf("run day %d: %w", day, err)
		}

		// Day-end closure: the route always ends at the depot, even
		// when the final leg lands past the workday.
		if !vehicle.AtDepot() {
			back := estimator.Estimate(vehicle.At, p.Depot)
			vehicle.CloseRoute(p.Depot, back.DistanceKm, back.TravelMin)
		}

		result.Deliveries = append(result.Deliveries, records...)
		result.Metrics = append(result.Metrics, domain.DailyMetric{
			Day:        day,
			VehicleID:  vehicle.VehicleID,
			DistanceKm: round2(vehicle.DistanceKm),
			TimeMin:    round1(vehicle.ElapsedMin),
		})

		trace, err := traceRoute(vehicle, ledger, p.Depot, day)
		if err != nil {
			return nil, fmt.Errorf("run day %d: %w", day, err)
		}
		result.Routes = append(result.Routes, trace)
	}

	return result, nil
}

// traceRoute resolves a vehicle's stop IDs into coordinates for
// reporting.
func traceRoute(vehicle *domain.Vehicle, ledger *domain.Ledger, depot domain.Point, day int) (domain.RouteTrace, error) {
	trace := domain.RouteTrace{
		Day:       day,
		VehicleID: vehicle.VehicleID,
		Stops:     append([]int(nil), vehicle.Route...),
		Points:    make([]domain.Point, 0, len(vehicle.Route)),
	}

	for _, id := range vehicle.Route {
		if id == domain.DepotID {
			trace.Points = append(trace.Points, depot)
			continue
		}
		c, ok := ledger.Customer(id)
		if !ok {
			return domain.RouteTrace{}, fmt.Errorf("trace route: vehicle %d visited unknown location %d", vehicle.VehicleID, id)
		}
		trace.Points = append(trace.Points, c.Location)
	}

	return trace, nil
}
