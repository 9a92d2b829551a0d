package domain

// Represents a single delivery order handled by the system.
// A Customer has a unique identifier, a drop-off location and the
// weight that must be on board when the vehicle arrives. The record
// itself is immutable; per-run service state lives in the Ledger.
type Customer struct {
	CustomerID int
	Location   Point
	WeightKg   float64
}

// Mutable per-customer service state, owned by the Ledger.
// All fields are written exactly once, at the moment the route builder
// commits the customer to a route, and never mutated afterwards.
type ServiceState struct {
	Served       bool
	AssignedDay  int
	ArrivalMin   float64
	DepartureMin float64
}
