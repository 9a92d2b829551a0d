package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"delivery-scheduler/internal/domain"
	"delivery-scheduler/internal/platform/obs"
)

// SQLite-backed implementation of the ScheduleStore port. Records are
// append-only: re-running a schedule adds a new batch of rows.
type SqliteScheduleStore struct {
	DB *sql.DB
}

func NewSqliteScheduleStore(db *sql.DB) *SqliteScheduleStore {
	return &SqliteScheduleStore{DB: db}
}

// Store all delivery records and daily metrics of one schedule in a
// single transaction.
func (s *SqliteScheduleStore) SaveSchedule(ctx context.Context, schedule *domain.Schedule) (err error) {
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
	VALUES (?, ?, ?, ?, ?, ?);
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
	INSERT OR REPLACE INTO daily_metrics (day, vehicle_id, distance_km, time_min)
	VALUES (?, ?, ?, ?);
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
