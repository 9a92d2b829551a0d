package services

import (
	"fmt"
	"math"

	"delivery-scheduler/internal/domain"
	"delivery-scheduler/internal/ports"
)

// BuildRoute extends one vehicle's route greedily until no unserved
// customer fits the remaining capacity and duty budget.
//
// Each step charges a one-step lookahead cost: travel to the candidate,
// the fixed dispatch stop, and the hypothetical return leg to the
// depot. The return leg is never committed here — it only biases
// selection toward customers that leave the vehicle able to get home.
// The algorithm minimizes that cost at each step and does not attempt
// global route optimization.
func BuildRoute(
	vehicle *domain.Vehicle,
	ledger *domain.Ledger,
	estimator ports.TravelEstimator,
	p Params,
	day int,
) ([]domain.DeliveryRecord, error) {
	var records []domain.DeliveryRecord

	for {
		best := selectCandidate(vehicle, ledger, estimator, p)
		if best == nil {
			// Nothing feasible left for this vehicle today. The day
			// scheduler still owes the route a final depot leg.
			return records, nil
		}

		arrival := vehicle.ElapsedMin + best.toLeg.TravelMin
		departure := arrival + p.DispatchMin

		if err := ledger.MarkServed(best.customer.CustomerID, day, round1(arrival), round1(departure)); err != nil {
			return nil, fmt.Errorf("build route: vehicle %d: %w", vehicle.VehicleID, err)
		}
		vehicle.Serve(best.customer, best.toLeg.DistanceKm, departure)

		records = append(records, domain.DeliveryRecord{
			Day:           day,
			VehicleID:     vehicle.VehicleID,
			CustomerID:    best.customer.CustomerID,
			ArrivalMin:    round1(arrival),
			DepartureMin:  round1(departure),
			LegDistanceKm: round2(best.toLeg.DistanceKm),
		})

		// Forced reload: when even the lightest remaining customer no
		// longer fits, the vehicle returns to the depot and empties.
		// The reload is charged even if it lands past the workday; the
		// duty budget only gates customer selection.
		if minKg, ok := ledger.MinUnservedWeightKg(); ok && vehicle.LoadKg+minKg > p.CapacityKg {
			back := estimator.Estimate(vehicle.At, p.Depot)
			vehicle.Reload(p.Depot, back.DistanceKm, back.TravelMin, p.ReloadMin)
		}
	}
}

type candidate struct {
	customer *domain.Customer
	toLeg    ports.Leg
	cost     float64
}

// selectCandidate returns the cheapest feasible unserved customer, or
// nil when none survives filtering. Candidates are scanned in
// ascending customer ID, so equal costs deterministically resolve to
// the lowest ID.
func selectCandidate(
	vehicle *domain.Vehicle,
	ledger *domain.Ledger,
	estimator ports.TravelEstimator,
	p Params,
) *candidate {
	var best *candidate

	for _, c := range ledger.Unserved() {
		if vehicle.LoadKg+c.WeightKg > p.CapacityKg {
			continue
		}

		toLeg := estimator.Estimate(vehicle.At, c.Location)
		returnLeg := estimator.Estimate(c.Location, p.Depot)
		cost := toLeg.TravelMin + p.DispatchMin + returnLeg.TravelMin

		// Skip candidates the vehicle provably could not both reach
		// and return from within the remaining duty budget.
		if vehicle.ElapsedMin+cost > p.WorkdayMin {
			continue
		}

		if best == nil || cost < best.cost {
			best = &candidate{customer: c, toLeg: toLeg, cost: cost}
		}
	}

	return best
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
