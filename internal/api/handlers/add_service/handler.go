package add_service

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
	msgDuplicateService   = "услуга с таким названием уже есть в салоне"
)

// AddServiceRequest тело запроса на добавление услуги
type AddServiceRequest struct {
	Name            string  `json:"name"`
	Kind            string  `json:"kind"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`

	HaircutType          string `json:"haircutType,omitempty"`
	IncludesTrim         bool   `json:"includesTrim,omitempty"`
	ColorType            string `json:"colorType,omitempty"`
	RequiresConsultation bool   `json:"requiresConsultation,omitempty"`
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

// Handle POST /api/v1/salons/{salonId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID := mux.Vars(r)["salonId"]

	var req AddServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddService(r.Context(), &models.AddServiceRequest{
		SalonID:              salonID,
		Name:                 req.Name,
		Kind:                 req.Kind,
		DurationMinutes:      req.DurationMinutes,
		Price:                req.Price,
		HaircutType:          req.HaircutType,
		IncludesTrim:         req.IncludesTrim,
		ColorType:            req.ColorType,
		RequiresConsultation: req.RequiresConsultation,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrSalonNotFound):
			h.logger.Warn("POST /salons/{id}/services - Salon not found: salon_id=%s", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, catalog.ErrDuplicateService):
			h.logger.Warn("POST /salons/{id}/services - Duplicate service %q in salon_id=%s", req.Name, salonID)
			handlers.RespondConflict(w, msgDuplicateService)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /salons/{id}/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /salons/{id}/services - Failed: salon_id=%s, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/{id}/services - Added service %q to salon_id=%s", req.Name, salonID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.ToServiceView(*result))
}
