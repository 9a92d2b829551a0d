package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"delivery-scheduler/internal/domain"
	"delivery-scheduler/internal/platform/obs"
)

// SQLScheduleStore is the Postgres-backed implementation of the
// ScheduleStore port.
type SQLScheduleStore struct {
	DB *sql.DB
}

func NewSQLScheduleStore(db *sql.DB) *SQLScheduleStore {
	return &SQLScheduleStore{DB: db}
}

// Store all delivery records and daily metrics of one schedule in a
// single transaction.
func (s *SQLScheduleStore) SaveSchedule(ctx context.Context, schedule *domain.Schedule) (err error) {
	defer obs.Time(ctx, "schedule.store.SaveSchedule")(&err)

	if s.DB == nil {
		return errors.New("schedule store: db is nil")
	}
	if schedule == nil {
		return errors.New("save schedule: schedule must be non-nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save schedule: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	deliveryStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO deliveries (day, vehicle_id, customer_id, arrival_min, departure_min, leg_distance_km)
	VALUES ($1, $2, $3, $4, $5, $6);
	`)
	if err != nil {
		return fmt.Errorf("save schedule: prepare deliveries insert: %w", err)
	}
	defer deliveryStmt.Close()

	for _, d := range schedule.Deliveries {
		if _, err := deliveryStmt.ExecContext(ctx, d.Day, d.VehicleID, d.CustomerID, d.ArrivalMin, d.DepartureMin, d.LegDistanceKm); err != nil {
			return fmt.Errorf("save schedule: insert delivery customer_id=%d: %w", d.CustomerID, err)
		}
	}

	metricStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO daily_metrics (day, vehicle_id, distance_km, time_min)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (day, vehicle_id) DO UPDATE
	SET distance_km = EXCLUDED.distance_km,
		time_min = EXCLUDED.time_min;
	`)
	if err != nil {
		return fmt.Errorf("save schedule: prepare metrics insert: %w", err)
	}
	defer metricStmt.Close()

	for _, m := range schedule.Metrics {
		if _, err := metricStmt.ExecContext(ctx, m.Day, m.VehicleID, m.DistanceKm, m.TimeMin); err != nil {
			return fmt.Errorf("save schedule: insert metric day=%d vehicle=%d: %w", m.Day, m.VehicleID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save schedule: commit: %w", err)
	}

	return nil
}
