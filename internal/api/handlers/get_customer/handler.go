package get_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonSchedulingService/internal/api/handlers"
	"github.com/m04kA/SalonSchedulingService/internal/service/catalog"
)

const (
	msgCustomerNotFound = "клиент не найден"
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

// Handle GET /api/v1/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	result, err := h.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, catalog.ErrCustomerNotFound) {
			h.logger.Warn("GET /customers/{id} - Customer not found: customer_id=%s", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)
			return
		}
		h.logger.Error("GET /customers/{id} - Failed: customer_id=%s, error=%v", customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ToCustomerView(result))
}
