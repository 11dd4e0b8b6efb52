package add_staff_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonSchedulingService/internal/api/handlers"
	"github.com/m04kA/SalonSchedulingService/internal/service/catalog"
	"github.com/m04kA/SalonSchedulingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWindow      = "некорректный формат окна, ожидается RFC3339"
	msgSalonNotFound      = "салон не найден"
	msgStaffNotFound      = "мастер не найден"
	msgWindowConflict     = "окно пересекается с уже добавленным окном доступности"
)

// AddWindowRequest тело запроса на добавление окна доступности
type AddWindowRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
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

// Handle POST /api/v1/salons/{salonId}/staff/{staffId}/windows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID := vars["salonId"]
	staffID := vars["staffId"]

	var req AddWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{id}/staff/{id}/windows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/staff/{id}/windows - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/staff/{id}/windows - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	err = h.service.AddStaffWindow(r.Context(), &models.AddWindowRequest{
		SalonID: salonID,
		StaffID: staffID,
		Start:   start,
		End:     end,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrSalonNotFound):
			h.logger.Warn("POST /salons/{id}/staff/{id}/windows - Salon not found: salon_id=%s", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, catalog.ErrStaffNotFound):
			h.logger.Warn("POST /salons/{id}/staff/{id}/windows - Staff not found: staff_id=%s", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, catalog.ErrWindowConflict):
			h.logger.Warn("POST /salons/{id}/staff/{id}/windows - Window conflict: staff_id=%s", staffID)
			handlers.RespondConflict(w, msgWindowConflict)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /salons/{id}/staff/{id}/windows - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("POST /salons/{id}/staff/{id}/windows - Failed: staff_id=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/{id}/staff/{id}/windows - Added window for staff_id=%s", staffID)
	w.WriteHeader(http.StatusNoContent)
}
