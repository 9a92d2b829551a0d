package services

import (
	"fmt"

	"delivery-scheduler/internal/domain"
)

// Params are the fixed operating constants for one scheduling run.
// The fleet is homogeneous: every vehicle shares the same capacity
// and works out of the single depot.
type Params struct {
	CapacityKg  float64
	SpeedKmh    float64
	DispatchMin float64
	ReloadMin   float64
	WorkdayMin  float64
	FleetSize   int
	Depot       domain.Point
	MaxDays     int
}

// DefaultParams returns the standard fleet configuration: 4 vehicles
// of 15 kg at 60 km/h, 10 min per dispatch, 20 min per reload, a
// 7-hour workday and the depot at the origin.
func DefaultParams() Params {
	return Params{
		CapacityKg:  15,
		SpeedKmh:    60,
		DispatchMin: 10,
		ReloadMin:   20,
		WorkdayMin:  7 * 60,
		FleetSize:   4,
		Depot:       domain.Point{},
		MaxDays:     365,
	}
}

// Validate rejects degenerate configurations before any scheduling
// starts. An empty fleet or a zero capacity would make every daily
// candidate scan come up empty and the day loop spin forever.
func (p Params) Validate() error {
	if p.FleetSize < 1 {
		return fmt.Errorf("params: fleet_size must be at least 1, got %d", p.FleetSize)
	}
	if p.CapacityKg <= 0 {
		return fmt.Errorf("params: capacity_kg must be positive, got %g", p.CapacityKg)
	}
	if p.SpeedKmh <= 0 {
		return fmt.Errorf("params: speed_kmh must be positive, got %g", p.SpeedKmh)
	}
	if p.DispatchMin < 0 {
		return fmt.Errorf("params: dispatch_min must not be negative, got %g", p.DispatchMin)
	}
	if p.ReloadMin < 0 {
		return fmt.Errorf("params: reload_min must not be negative, got %g", p.ReloadMin)
	}
	if p.WorkdayMin <= 0 {
		return fmt.Errorf("params: workday_min must be positive, got %g", p.WorkdayMin)
	}
	if p.MaxDays < 1 {
		return fmt.Errorf("params: max_days must be at least 1, got %d", p.MaxDays)
	}
	return nil
}
