package domain

// DeliveryRecord is the append-only log entry emitted exactly once per
// served customer. Times are minutes from the start of the assigned
// day, rounded to one decimal; the leg distance is rounded to two.
type DeliveryRecord struct {
	Day           int
	VehicleID     int
	CustomerID    int
	ArrivalMin    float64
	DepartureMin  float64
	LegDistanceKm float64
}

// DailyMetric summarizes one vehicle's operating day: total distance
// (two decimals) and total duty time (one decimal).
type DailyMetric struct {
	Day        int
	VehicleID  int
	DistanceKm float64
	TimeMin    float64
}

// RouteTrace is the ordered stop sequence one vehicle drove on one
// day, with the matching coordinates. It is reporting data only and
// contains no side effects.
type RouteTrace struct {
	Day       int
	VehicleID int
	Stops     []int
	Points    []Point
}

// Schedule is the complete result of a multi-day run.
type Schedule struct {
	Days       int
	Deliveries []DeliveryRecord
	Metrics    []DailyMetric
	Routes     []RouteTrace
}
