package dto

// ScheduleRequest carries optional overrides of the configured
// scheduling constants. Absent fields keep the server defaults.
type ScheduleRequest struct {
	CapacityKg  *float64 `json:"capacity_kg"`
	SpeedKmh    *float64 `json:"speed_kmh"`
	DispatchMin *float64 `json:"dispatch_min"`
	ReloadMin   *float64 `json:"reload_min"`
	WorkdayMin  *float64 `json:"workday_min"`
	FleetSize   *int     `json:"fleet_size"`
	MaxDays     *int     `json:"max_days"`
	DryRun      bool     `json:"dry_run"`
}

type DeliveryResponse struct {
	Day           int     `json:"day"`
	VehicleID     int     `json:"vehicle_id"`
	CustomerID    int     `json:"customer_id"`
	ArrivalMin    float64 `json:"arrival_min"`
	DepartureMin  float64 `json:"departure_min"`
	LegDistanceKm float64 `json:"leg_distance_km"`
}

type MetricResponse struct {
	Day        int     `json:"day"`
	VehicleID  int     `json:"vehicle_id"`
	DistanceKm float64 `json:"distance_km"`
	TimeMin    float64 `json:"time_min"`
}

type PointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type RouteResponse struct {
	Day       int             `json:"day"`
	VehicleID int             `json:"vehicle_id"`
	Stops     []int           `json:"stops"`
	Points    []PointResponse `json:"points"`
}

type ScheduleResponse struct {
	Days       int                `json:"days"`
	Deliveries []DeliveryResponse `json:"deliveries"`
	Metrics    []MetricResponse   `json:"metrics"`
	Routes     []RouteResponse    `json:"routes"`
}
