package get_booking_stats

import (
	"net/http"

	"github.com/m04kA/SalonSchedulingService/internal/api/handlers"
)

// StatsResponse HTTP response model
type StatsResponse struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
}

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

// Handle GET /api/v1/bookings/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.CountAll(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings/stats - Failed to count bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	pending, err := h.service.CountPending(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings/stats - Failed to count pending bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, StatsResponse{
		Total:   total,
		Pending: pending,
	})
}
