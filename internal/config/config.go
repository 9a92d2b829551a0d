package config

import (
	"os"
	"strconv"

	"delivery-scheduler/internal/services"
)

// Get returns the value of an environment variable, or the fallback
// when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt returns an integer environment variable, or the fallback when
// unset or unparseable.
func GetInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// GetFloat returns a float environment variable, or the fallback when
// unset or unparseable.
func GetFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// EngineParams assembles the scheduling constants from the
// environment on top of the standard defaults. Callers still run
// Params.Validate before scheduling.
func EngineParams() services.Params {
	p := services.DefaultParams()
	p.CapacityKg = GetFloat("CAPACITY_KG", p.CapacityKg)
	p.SpeedKmh = GetFloat("SPEED_KMH", p.SpeedKmh)
	p.DispatchMin = GetFloat("DISPATCH_MIN", p.DispatchMin)
	p.ReloadMin = GetFloat("RELOAD_MIN", p.ReloadMin)
	p.WorkdayMin = GetFloat("WORKDAY_MIN", p.WorkdayMin)
	p.FleetSize = GetInt("FLEET_SIZE", p.FleetSize)
	p.Depot.X = GetFloat("DEPOT_X", p.Depot.X)
	p.Depot.Y = GetFloat("DEPOT_Y", p.Depot.Y)
	p.MaxDays = GetInt("MAX_DAYS", p.MaxDays)
	return p
}
