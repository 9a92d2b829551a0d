package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"delivery-scheduler/internal/domain"
)

// SQL-backed implementation of the CustomerRepository port. The query
// takes no parameters, so the same adapter serves both the SQLite and
// the Postgres driver.
type SQLCustomerRepository struct{ DB *sql.DB }

func NewSQLCustomerRepository(db *sql.DB) *SQLCustomerRepository {
	return &SQLCustomerRepository{DB: db}
}

// Return all customers stored in the database, ordered by ID.
func (s *SQLCustomerRepository) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	if s.DB == nil {
		return nil, errors.New("customer repository: DB is nil")
	}

	query := `
	SELECT
		customer_id,
		x,
		y,
		weight_kg
	FROM customers
	ORDER BY customer_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: query customers table: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0, 64)
	for rows.Next() {
		var id int
		var x, y, weight float64
		if err := rows.Scan(&id, &x, &y, &weight); err != nil {
			return nil, fmt.Errorf("list customers: scan row: %w", err)
		}
		customers = append(customers, &domain.Customer{
			CustomerID: id,
			Location:   domain.Point{X: x, Y: y},
			WeightKg:   weight,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list customers: row iteration: %w", err)
	}

	return customers, nil
}
