package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS customers (
			customer_id INTEGER PRIMARY KEY,
			x DOUBLE PRECISION NOT NULL,
			y DOUBLE PRECISION NOT NULL,
			weight_kg DOUBLE PRECISION NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS deliveries (
			day INTEGER NOT NULL,
			vehicle_id INTEGER NOT NULL,
			customer_id INTEGER NOT NULL,
			arrival_min DOUBLE PRECISION NOT NULL,
			departure_min DOUBLE PRECISION NOT NULL,
			leg_distance_km DOUBLE PRECISION NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS daily_metrics (
			day INTEGER NOT NULL,
			vehicle_id INTEGER NOT NULL,
			distance_km DOUBLE PRECISION NOT NULL,
			time_min DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (day, vehicle_id)
		);
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_deliveries_day_vehicle
		ON deliveries(day, vehicle_id);
		`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres database with customer data from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := loadSeedFile(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed customers: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO customers (customer_id, x, y, weight_kg)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (customer_id) DO UPDATE
	SET x = EXCLUDED.x,
		y = EXCLUDED.y,
		weight_kg = EXCLUDED.weight_kg;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed customers: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range rows {
		if _, err := stmt.Exec(c.CustomerID, c.X, c.Y, c.WeightKg); err != nil {
			return fmt.Errorf("seed customers: insert customer_id=%d: %w", c.CustomerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed customers: commit tx: %w", err)
	}

	return nil
}
