package grant_capability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonSchedulingService/internal/api/handlers"
	"github.com/m04kA/SalonSchedulingService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSalonNotFound      = "салон не найден"
	msgStaffNotFound      = "мастер не найден"
	msgServiceNotFound    = "услуга не найдена"
)

// GrantCapabilityRequest тело запроса на добавление умения мастеру
type GrantCapabilityRequest struct {
	ServiceName string `json:"serviceName"`
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons/{salonId}/staff/{staffId}/capabilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID := vars["salonId"]
	staffID := vars["staffId"]

	var req GrantCapabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.ServiceName == "" {
		h.logger.Warn("POST /salons/{id}/staff/{id}/capabilities - Invalid request body")
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.GrantCapability(r.Context(), salonID, staffID, req.ServiceName)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrSalonNotFound):
			h.logger.Warn("POST /salons/{id}/staff/{id}/capabilities - Salon not found: salon_id=%s", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, catalog.ErrStaffNotFound):
			h.logger.Warn("POST /salons/{id}/staff/{id}/capabilities - Staff not found: staff_id=%s", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("POST /salons/{id}/staff/{id}/capabilities - Service not found: service=%q", req.ServiceName)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /salons/{id}/staff/{id}/capabilities - Failed: staff_id=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/{id}/staff/{id}/capabilities - Granted %q to staff_id=%s", req.ServiceName, staffID)
	w.WriteHeader(http.StatusNoContent)
}
