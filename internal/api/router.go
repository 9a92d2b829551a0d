package api

import (
	"net/http"

	"delivery-scheduler/internal/api/handlers"
	"delivery-scheduler/internal/ports"
	"delivery-scheduler/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay
// unaware of concrete adapters).
func NewRouter(
	repo ports.CustomerRepository,
	store ports.ScheduleStore,
	defaults services.Params,
) http.Handler {
	mux := http.NewServeMux()

	customerHandler := &handlers.CustomerHandler{Repo: repo}
	scheduleHandler := &handlers.ScheduleHandler{
		Repo:     repo,
		Store:    store,
		Defaults: defaults,
	}
	reportHandler := &handlers.ReportHandler{
		Repo:     repo,
		Defaults: defaults,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/customers", customerHandler.List)
	mux.HandleFunc("/schedules", scheduleHandler.Run)
	mux.HandleFunc("/reports", reportHandler.Export)

	return loggingMiddleware(mux)
}
