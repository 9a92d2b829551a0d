package handlers

import (
	"log"
	"net/http"

	"delivery-scheduler/internal/api/dto"
	"delivery-scheduler/internal/ports"
)

// CustomerHandler exposes read-only customer retrieval endpoints.
type CustomerHandler struct {
	Repo ports.CustomerRepository
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	customers, err := h.Repo.ListCustomers(r.Context())
	if err != nil {
		log.Printf("list customers failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListCustomersResponse{
		Customers: make([]dto.CustomerResponse, 0, len(customers)),
	}
	for _, c := range customers {
		res.Customers = append(res.Customers, dto.CustomerResponse{
			CustomerID: c.CustomerID,
			X:          c.Location.X,
			Y:          c.Location.Y,
			WeightKg:   c.WeightKg,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
