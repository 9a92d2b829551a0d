package ports

import (
	"context"

	"delivery-scheduler/internal/domain"
)

// Port: a boundary for retrieving Customer entities from a data source.
type CustomerRepository interface {
	// Retrieve all customers available for scheduling.
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
}
