package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCustomersQuery := `
	CREATE TABLE IF NOT EXISTS customers (
		customer_id INTEGER PRIMARY KEY,
		x REAL NOT NULL,
		y REAL NOT NULL,
		weight_kg REAL NOT NULL
	);
	`

	createDeliveriesQuery := `
	CREATE TABLE IF NOT EXISTS deliveries (
		day INTEGER NOT NULL,
		vehicle_id INTEGER NOT NULL,
		customer_id INTEGER NOT NULL,
		arrival_min REAL NOT NULL,
		departure_min REAL NOT NULL,
		leg_distance_km REAL NOT NULL
	);
	`

	createMetricsQuery := `
	CREATE TABLE IF NOT EXISTS daily_metrics (
		day INTEGER NOT NULL,
		vehicle_id INTEGER NOT NULL,
		distance_km REAL NOT NULL,
		time_min REAL NOT NULL,
		PRIMARY KEY (day, vehicle_id)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_deliveries_day_vehicle
	ON deliveries(day, vehicle_id);
	`

	statements := []string{
		createCustomersQuery,
		createDeliveriesQuery,
		createMetricsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the SQLite database with customer data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
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
	INSERT OR REPLACE INTO customers (
		customer_id,
		x,
		y,
		weight_kg
	)
	VALUES (?, ?, ?, ?);
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
