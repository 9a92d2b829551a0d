package domain

// Vehicle is the per-day accumulator for one fleet slot.
// A fresh Vehicle is created at the start of each operating day and
// discarded once its metrics are recorded; no vehicle state survives
// between days. Load and elapsed duty time only move through the
// methods below so the route sequence always stays consistent with
// the accumulators.
type Vehicle struct {
	VehicleID  int
	Route      []int // visited location IDs, always starts at the depot
	LoadKg     float64
	ElapsedMin float64
	DistanceKm float64
	At         Point
	AtID       int
}

// NewVehicle returns an empty vehicle parked at the depot.
func NewVehicle(id int, depot Point) *Vehicle {
	return &Vehicle{
		VehicleID: id,
		Route:     []int{DepotID},
		At:        depot,
		AtID:      DepotID,
	}
}

// Serve moves the vehicle to the customer and takes on its weight.
// departureMin is the duty clock after the dispatch stop completes.
func (v *Vehicle) Serve(c *Customer, legKm, departureMin float64) {
	v.Route = append(v.Route, c.CustomerID)
	v.LoadKg += c.WeightKg
	v.ElapsedMin = departureMin
	v.DistanceKm += legKm
	v.At = c.Location
	v.AtID = c.CustomerID
}

// Reload drives the vehicle back to the depot mid-day and empties it.
// reloadMin is the fixed unloading time charged on top of the leg.
func (v *Vehicle) Reload(depot Point, legKm, legMin, reloadMin float64) {
	v.Route = append(v.Route, DepotID)
	v.ElapsedMin += legMin + reloadMin
	v.DistanceKm += legKm
	v.LoadKg = 0
	v.At = depot
	v.AtID = DepotID
}

// CloseRoute appends the final depot leg at day end. Unlike Reload it
// charges only travel time; the load stays on record for the metrics.
func (v *Vehicle) CloseRoute(depot Point, legKm, legMin float64) {
	v.Route = append(v.Route, DepotID)
	v.ElapsedMin += legMin
	v.DistanceKm += legKm
	v.At = depot
	v.AtID = DepotID
}

// AtDepot reports whether the vehicle is currently at the depot.
func (v *Vehicle) AtDepot() bool { return v.AtID == DepotID }
