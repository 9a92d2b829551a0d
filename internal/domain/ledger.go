package domain

import (
	"errors"
	"fmt"
	"slices"
)

// Ledger tracks which customers have been served across a whole
// multi-day run. It is the single piece of state shared between
// vehicles: every commit must be visible to the next vehicle's
// candidate scan, which is what prevents double assignment.
type Ledger struct {
	customers []*Customer // ascending CustomerID
	byID      map[int]*Customer
	state     map[int]*ServiceState
	unserved  int
}

// NewLedger builds a ledger over the given customer records.
// Customers are ordered by ascending ID so candidate scans are stable.
func NewLedger(customers []*Customer) (*Ledger, error) {
	l := &Ledger{
		customers: make([]*Customer, 0, len(customers)),
		byID:      make(map[int]*Customer, len(customers)),
		state:     make(map[int]*ServiceState, len(customers)),
	}

	for _, c := range customers {
		if c == nil {
			return nil, errors.New("new ledger: customer must be non-nil")
		}
		if c.CustomerID <= DepotID {
			return nil, fmt.Errorf("new ledger: customer ID %d must be positive", c.CustomerID)
		}
		if c.WeightKg <= 0 {
			return nil, fmt.Errorf("new ledger: customer %d weight %.2f must be positive", c.CustomerID, c.WeightKg)
		}
		if _, ok := l.byID[c.CustomerID]; ok {
			return nil, fmt.Errorf("new ledger: duplicate customer ID %d", c.CustomerID)
		}

		l.byID[c.CustomerID] = c
		l.state[c.CustomerID] = &ServiceState{}
		l.customers = append(l.customers, c)
	}

	slices.SortFunc(l.customers, func(a, b *Customer) int {
		return a.CustomerID - b.CustomerID
	})
	l.unserved = len(l.customers)
	return l, nil
}

// Customer returns the immutable record for the given ID.
func (l *Ledger) Customer(id int) (*Customer, bool) {
	c, ok := l.byID[id]
	return c, ok
}

// State returns a copy of the customer's service state.
func (l *Ledger) State(id int) (ServiceState, bool) {
	s, ok := l.state[id]
	if !ok {
		return ServiceState{}, false
	}
	return *s, true
}

// Unserved returns the customers still awaiting service, in ascending
// ID order. The slice is rebuilt per call; callers may not mutate the
// ledger while iterating it.
func (l *Ledger) Unserved() []*Customer {
	out := make([]*Customer, 0, l.unserved)
	for _, c := range l.customers {
		if !l.state[c.CustomerID].Served {
			out = append(out, c)
		}
	}
	return out
}

// UnservedIDs returns the IDs of customers still awaiting service.
func (l *Ledger) UnservedIDs() []int {
	ids := make([]int, 0, l.unserved)
	for _, c := range l.customers {
		if !l.state[c.CustomerID].Served {
			ids = append(ids, c.CustomerID)
		}
	}
	return ids
}

// UnservedCount returns how many customers still await service.
func (l *Ledger) UnservedCount() int { return l.unserved }

// AllServed reports whether every customer has been served.
func (l *Ledger) AllServed() bool { return l.unserved == 0 }

// MinUnservedWeightKg returns the lightest weight among unserved
// customers. The second return is false when everyone is served.
func (l *Ledger) MinUnservedWeightKg() (float64, bool) {
	found := false
	min := 0.0
	for _, c := range l.customers {
		if l.state[c.CustomerID].Served {
			continue
		}
		if !found || c.WeightKg < min {
			min = c.WeightKg
			found = true
		}
	}
	return min, found
}

// MarkServed writes the customer's service state. A customer can be
// marked exactly once; a second attempt is a programming error.
func (l *Ledger) MarkServed(id, day int, arrivalMin, departureMin float64) error {
	s, ok := l.state[id]
	if !ok {
		return fmt.Errorf("mark served: unknown customer ID %d", id)
	}
	if s.Served {
		return fmt.Errorf("mark served: customer %d already served on day %d", id, s.AssignedDay)
	}

	s.Served = true
	s.AssignedDay = day
	s.ArrivalMin = arrivalMin
	s.DepartureMin = departureMin
	l.unserved--
	return nil
}
