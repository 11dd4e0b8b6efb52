package get_customer_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonSchedulingService/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	result, err := h.service.ListByCustomer(r.Context(), customerID)
	if err != nil {
		h.logger.Error("GET /customers/{id}/bookings - Failed: customer_id=%s, error=%v", customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ToBookingListView(result))
}
