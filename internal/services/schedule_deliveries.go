package services

import (
	"context"
	"fmt"

	"delivery-scheduler/internal/domain"
	"delivery-scheduler/internal/platform/obs"
	"delivery-scheduler/internal/ports"
)

// ScheduleDeliveries runs a complete multi-day schedule: it loads the
// customer set from the repository, drives the scheduler to completion
// and persists the resulting records through the store.
//
// A nil store skips persistence, which keeps dry runs cheap.
func ScheduleDeliveries(
	ctx context.Context,
	p Params,
	repo ports.CustomerRepository,
	estimator ports.TravelEstimator,
	store ports.ScheduleStore,
) (_ *domain.Schedule, err error) {
	defer obs.Time(ctx, "services.ScheduleDeliveries")(&err)

	customers, err := repo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("schedule deliveries: list customers: %w", err)
	}

	ledger, err := domain.NewLedger(customers)
	if err != nil {
		return nil, fmt.Errorf("schedule deliveries: %w", err)
	}

	schedule, err := RunSchedule(ledger, estimator, p)
	if err != nil {
		return nil, fmt.Errorf("schedule deliveries: %w", err)
	}

	if store != nil {
		if err := store.SaveSchedule(ctx, schedule); err != nil {
			return nil, fmt.Errorf("schedule deliveries: save schedule: %w", err)
		}
	}

	return schedule, nil
}
