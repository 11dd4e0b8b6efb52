package create_salon

import (
	"errors"
	"net/http"

	"github.com/m04kA/SalonSchedulingService/internal/api/handlers"
	"github.com/m04kA/SalonSchedulingService/internal/service/catalog"
	"github.com/m04kA/SalonSchedulingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

// CreateSalonRequest тело запроса на создание салона
type CreateSalonRequest struct {
	Name       string `json:"name"`
	HoursStart string `json:"hoursStart"`
	HoursEnd   string `json:"hoursEnd"`
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

// Handle POST /api/v1/salons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSalonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateSalon(r.Context(), &models.CreateSalonRequest{
		Name:       req.Name,
		HoursStart: req.HoursStart,
		HoursEnd:   req.HoursEnd,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /salons - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /salons - Failed to create salon: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /salons - Created salon: salon_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.ToSalonView(result))
}
