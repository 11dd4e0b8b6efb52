package get_staff_bookings

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

// Handle GET /api/v1/staff/{staffId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID := mux.Vars(r)["staffId"]

	result, err := h.service.ListByStaff(r.Context(), staffID)
	if err != nil {
		h.logger.Error("GET /staff/{id}/bookings - Failed: staff_id=%s, error=%v", staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ToBookingListView(result))
}
