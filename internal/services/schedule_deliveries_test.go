package services

import (
	"context"
	"errors"
	"testing"

	"delivery-scheduler/internal/domain"
)

type fakeCustomerRepo struct {
	customers []*domain.Customer
	err       error
}

func (f *fakeCustomerRepo) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return f.customers, f.err
}

type fakeScheduleStore struct {
	saved *domain.Schedule
	err   error
}

func (f *fakeScheduleStore) SaveSchedule(ctx context.Context, s *domain.Schedule) error {
	f.saved = s
	return f.err
}

func TestScheduleDeliveriesPersistsResult(t *testing.T) {
	repo := &fakeCustomerRepo{customers: []*domain.Customer{
		{CustomerID: 1, Location: domain.Point{X: 0, Y: 10}, WeightKg: 10},
		{CustomerID: 2, Location: domain.Point{X: 0, Y: 20}, WeightKg: 10},
	}}
	store := &fakeScheduleStore{}

	p := testParams()
	schedule, err := ScheduleDeliveries(context.Background(), p, repo, testEstimator(t, p.SpeedKmh), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if schedule.Days != 1 {
		t.Fatalf("schedule took %d days, want 1", schedule.Days)
	}
	if store.saved != schedule {
		t.Fatal("store did not receive the computed schedule")
	}
}

func TestScheduleDeliveriesNilStoreSkipsPersistence(t *testing.T) {
	repo := &fakeCustomerRepo{customers: []*domain.Customer{
		{CustomerID: 1, Location: domain.Point{X: 0, Y: 10}, WeightKg: 10},
	}}

	p := testParams()
	if _, err := ScheduleDeliveries(context.Background(), p, repo, testEstimator(t, p.SpeedKmh), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestScheduleDeliveriesPropagatesErrors(t *testing.T) {
	p := testParams()
	est := testEstimator(t, p.SpeedKmh)

	repoErr := errors.New("db gone")
	if _, err := ScheduleDeliveries(context.Background(), p, &fakeCustomerRepo{err: repoErr}, est, nil); !errors.Is(err, repoErr) {
		t.Fatalf("error = %v, want wrapped repo error", err)
	}

	storeErr := errors.New("disk full")
	repo := &fakeCustomerRepo{customers: []*domain.Customer{
		{CustomerID: 1, Location: domain.Point{X: 0, Y: 10}, WeightKg: 10},
	}}
	if _, err := ScheduleDeliveries(context.Background(), p, repo, est, &fakeScheduleStore{err: storeErr}); !errors.Is(err, storeErr) {
		t.Fatalf("error = %v, want wrapped store error", err)
	}

	bad := &fakeCustomerRepo{customers: []*domain.Customer{
		{CustomerID: 1, Location: domain.Point{X: 0, Y: 10}, WeightKg: 50},
	}}
	if _, err := ScheduleDeliveries(context.Background(), p, bad, est, nil); !errors.Is(err, ErrUnservable) {
		t.Fatalf("error = %v, want ErrUnservable", err)
	}
}
