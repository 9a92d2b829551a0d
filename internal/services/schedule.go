package services

import (
	"errors"
	"fmt"

	"delivery-scheduler/internal/domain"
	"delivery-scheduler/internal/ports"
)

// ErrUnservable reports customers that no vehicle can ever serve:
// heavier than the vehicle capacity, or too far from the depot to
// visit and return within a single workday.
var ErrUnservable = errors.New("customer can never be served")

// ErrDayLimit reports a run that exceeded the configured day ceiling
// before serving every customer.
var ErrDayLimit = errors.New("day limit reached")

// RunSchedule drives day schedulers until every customer in the ledger
// is served, carrying unserved customers forward between days.
//
// Configuration and the customer set are checked up front so that a
// structurally impossible run fails with an error instead of looping
// day after day without progress.
func RunSchedule(
	ledger *domain.Ledger,
	estimator ports.TravelEstimator,
	p Params,
) (*domain.Schedule, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("run schedule: %w", err)
	}
	if err := checkServiceable(ledger, estimator, p); err != nil {
		return nil, fmt.Errorf("run schedule: %w", err)
	}

	schedule := &domain.Schedule{}

	for day := 1; !ledger.AllServed(); day++ {
		if day > p.MaxDays {
			return nil, fmt.Errorf("run schedule: %w: %d customers unserved after %d days",
				ErrDayLimit, ledger.UnservedCount(), p.MaxDays)
		}

		result, err := RunDay(ledger, estimator, p, day)
		if err != nil {
			return nil, fmt.Errorf("run schedule: %w", err)
		}

		schedule.Days = day
		schedule.Deliveries = append(schedule.Deliveries, result.Deliveries...)
		schedule.Metrics = append(schedule.Metrics, result.Metrics...)
		schedule.Routes = append(schedule.Routes, result.Routes...)
	}

	return schedule, nil
}

// checkServiceable rejects customers no vehicle can serve on any day.
// Because vehicle state resets daily, a customer that does not fit an
// empty vehicle fresh out of the depot never will.
func checkServiceable(ledger *domain.Ledger, estimator ports.TravelEstimator, p Params) error {
	var stranded []int

	for _, c := range ledger.Unserved() {
		if c.WeightKg > p.CapacityKg {
			stranded = append(stranded, c.CustomerID)
			continue
		}

		toLeg := estimator.Estimate(p.Depot, c.Location)
		returnLeg := estimator.Estimate(c.Location, p.Depot)
		if toLeg.TravelMin+p.DispatchMin+returnLeg.TravelMin > p.WorkdayMin {
			stranded = append(stranded, c.CustomerID)
		}
	}

	if len(stranded) > 0 {
		return fmt.Errorf("%w: customers %v exceed vehicle capacity or workday reach", ErrUnservable, stranded)
	}
	return nil
}
