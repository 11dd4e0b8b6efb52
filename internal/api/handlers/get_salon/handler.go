package get_salon

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonSchedulingService/internal/api/handlers"
	"github.com/m04kA/SalonSchedulingService/internal/service/catalog"
)

const (
	msgSalonNotFound = "салон не найден"
)

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

// Handle GET /api/v1/salons/{salonId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID := mux.Vars(r)["salonId"]

	result, err := h.service.GetSalon(r.Context(), salonID)
	if err != nil {
		if errors.Is(err, catalog.ErrSalonNotFound) {
			h.logger.Warn("GET /salons/{id} - Salon not found: salon_id=%s", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)
			return
		}
		h.logger.Error("GET /salons/{id} - Failed: salon_id=%s, error=%v", salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ToSalonView(result))
}
