package list_salons

import (
	"net/http"

	"github.com/m04kA/SalonSchedulingService/internal/api/handlers"
	"github.com/m04kA/SalonSchedulingService/internal/service/catalog/models"
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

// Handle GET /api/v1/salons?service=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		result []*models.SalonResponse
		err    error
	)

	if serviceName := r.URL.Query().Get("service"); serviceName != "" {
		result, err = h.service.FindSalonsWithService(r.Context(), serviceName)
	} else {
		result, err = h.service.ListSalons(r.Context())
	}

	if err != nil {
		h.logger.Error("GET /salons - Failed to list salons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ToSalonListView(result))
}
