package handlers

import (
	"errors"
	"log"
	"net/http"

	"delivery-scheduler/internal/adapters/distance"
	"delivery-scheduler/internal/ports"
	"delivery-scheduler/internal/report"
	"delivery-scheduler/internal/services"
)

// ReportHandler runs a schedule with the server defaults and streams
// one of its tables as CSV. Runs are deterministic, so recomputing on
// each export returns the same table every time.
type ReportHandler struct {
	Repo     ports.CustomerRepository
	Defaults services.Params
}

func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	table := r.URL.Query().Get("table")
	if table == "" {
		table = "deliveries"
	}
	if table != "deliveries" && table != "metrics" && table != "routes" {
		writeError(w, r, http.StatusBadRequest, "table must be one of deliveries, metrics, routes")
		return
	}

	estimator, err := distance.NewEuclideanEstimator(h.Defaults.SpeedKmh)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	// Exports never persist; they are read-only views of a run.
	schedule, err := services.ScheduleDeliveries(r.Context(), h.Defaults, h.Repo, estimator, nil)
	if err != nil {
		if errors.Is(err, services.ErrUnservable) || errors.Is(err, services.ErrDayLimit) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Printf("report export failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+table+".csv")

	switch table {
	case "deliveries":
		err = report.WriteDeliveriesCSV(w, schedule.Deliveries)
	case "metrics":
		err = report.WriteMetricsCSV(w, schedule.Metrics)
	case "routes":
		err = report.WriteRoutesCSV(w, schedule.Routes)
	}
	if err != nil {
		log.Printf("report export write failed: table=%s err=%v", table, err)
	}
}
