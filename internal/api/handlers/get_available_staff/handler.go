package get_available_staff

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonSchedulingService/internal/api/handlers"
	availableStaff "github.com/m04kA/SalonSchedulingService/internal/usecase/get_available_staff"
)

const (
	msgMissingService  = "не указано название услуги"
	msgInvalidAt       = "некорректный формат времени, ожидается RFC3339"
	msgSalonNotFound   = "салон не найден"
	msgServiceNotFound = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableStaffUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableStaffUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/available-staff?service=&at=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID := mux.Vars(r)["salonId"]

	serviceName := r.URL.Query().Get("service")
	if serviceName == "" {
		h.logger.Warn("GET /salons/{id}/available-staff - Missing service name")
		handlers.RespondBadRequest(w, msgMissingService)
		return
	}

	at, err := time.Parse(time.RFC3339, r.URL.Query().Get("at"))
	if err != nil {
		h.logger.Warn("GET /salons/{id}/available-staff - Invalid at: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &availableStaff.Request{
		SalonID:     salonID,
		ServiceName: serviceName,
		At:          at,
	})
	if err != nil {
		switch {
		case errors.Is(err, availableStaff.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/available-staff - Salon not found: salon=%s", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, availableStaff.ErrServiceNotFound):
			h.logger.Warn("GET /salons/{id}/available-staff - Service not found: service=%q", serviceName)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, availableStaff.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/available-staff - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingService)

		default:
			h.logger.Error("GET /salons/{id}/available-staff - Failed: salon=%s, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
