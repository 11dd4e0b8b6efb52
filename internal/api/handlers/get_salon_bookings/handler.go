package get_salon_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonSchedulingService/internal/api/handlers"
	"github.com/m04kA/SalonSchedulingService/internal/domain"
	"github.com/m04kA/SalonSchedulingService/internal/service/bookings"
)

const (
	msgInvalidStatus = "некорректный статус бронирования"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/salons/{salonId}/bookings?status=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID := mux.Vars(r)["salonId"]

	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = &raw
	}

	var date *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/bookings - Invalid date %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	result, err := h.service.ListBySalon(r.Context(), salonID, status, date)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /salons/{id}/bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /salons/{id}/bookings - Failed: salon_id=%s, error=%v", salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ToBookingListView(result))
}
