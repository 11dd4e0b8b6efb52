package add_staff

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonSchedulingService/internal/api/handlers"
	"github.com/m04kA/SalonSchedulingService/internal/service/catalog"
	"github.com/m04kA/SalonSchedulingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSalonNotFound      = "салон не найден"
)

// AddStaffRequest тело запроса на добавление мастера
type AddStaffRequest struct {
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
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

// Handle POST /api/v1/salons/{salonId}/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID := mux.Vars(r)["salonId"]

	var req AddStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{id}/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddStaff(r.Context(), &models.AddStaffRequest{
		SalonID:     salonID,
		Name:        req.Name,
		Specialties: req.Specialties,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrSalonNotFound):
			h.logger.Warn("POST /salons/{id}/staff - Salon not found: salon_id=%s", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /salons/{id}/staff - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /salons/{id}/staff - Failed: salon_id=%s, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/{id}/staff - Added staff: staff_id=%s, salon_id=%s", result.ID, salonID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.ToStaffView(*result))
}
