package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"delivery-scheduler/internal/adapters/distance"
	"delivery-scheduler/internal/api/dto"
	"delivery-scheduler/internal/domain"
	"delivery-scheduler/internal/ports"
	"delivery-scheduler/internal/services"
)

type ScheduleHandler struct {
	Repo     ports.CustomerRepository
	Store    ports.ScheduleStore
	Defaults services.Params
}

// Run executes a full multi-day scheduling run and returns the
// resulting delivery records, daily metrics and route traces.
func (h *ScheduleHandler) Run(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ScheduleRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil && err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	p := h.Defaults
	applyOverrides(&p, req)
	if err := p.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	estimator, err := distance.NewEuclideanEstimator(p.SpeedKmh)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	store := h.Store
	if req.DryRun {
		store = nil
	}

	schedule, err := services.ScheduleDeliveries(r.Context(), p, h.Repo, estimator, store)
	if err != nil {
		if errors.Is(err, services.ErrUnservable) || errors.Is(err, services.ErrDayLimit) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Printf("schedule deliveries failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, scheduleResponse(schedule))
}

func applyOverrides(p *services.Params, req dto.ScheduleRequest) {
	if req.CapacityKg != nil {
		p.CapacityKg = *req.CapacityKg
	}
	if req.SpeedKmh != nil {
		p.SpeedKmh = *req.SpeedKmh
	}
	if req.DispatchMin != nil {
		p.DispatchMin = *req.DispatchMin
	}
	if req.ReloadMin != nil {
		p.ReloadMin = *req.ReloadMin
	}
	if req.WorkdayMin != nil {
		p.WorkdayMin = *req.WorkdayMin
	}
	if req.FleetSize != nil {
		p.FleetSize = *req.FleetSize
	}
	if req.MaxDays != nil {
		p.MaxDays = *req.MaxDays
	}
}

func scheduleResponse(s *domain.Schedule) dto.ScheduleResponse {
	res := dto.ScheduleResponse{
		Days:       s.Days,
		Deliveries: make([]dto.DeliveryResponse, 0, len(s.Deliveries)),
		Metrics:    make([]dto.MetricResponse, 0, len(s.Metrics)),
		Routes:     make([]dto.RouteResponse, 0, len(s.Routes)),
	}

	for _, d := range s.Deliveries {
		res.Deliveries = append(res.Deliveries, dto.DeliveryResponse{
			Day:           d.Day,
			VehicleID:     d.VehicleID,
			CustomerID:    d.CustomerID,
			ArrivalMin:    d.ArrivalMin,
			DepartureMin:  d.DepartureMin,
			LegDistanceKm: d.LegDistanceKm,
		})
	}
	for _, m := range s.Metrics {
		res.Metrics = append(res.Metrics, dto.MetricResponse{
			Day:        m.Day,
			VehicleID:  m.VehicleID,
			DistanceKm: m.DistanceKm,
			TimeMin:    m.TimeMin,
		})
	}
	for _, r := range s.Routes {
		points := make([]dto.PointResponse, 0, len(r.Points))
		for _, p := range r.Points {
			points = append(points, dto.PointResponse{X: p.X, Y: p.Y})
		}
		res.Routes = append(res.Routes, dto.RouteResponse{
			Day:       r.Day,
			VehicleID: r.VehicleID,
			Stops:     r.Stops,
			Points:    points,
		})
	}

	return res
}
