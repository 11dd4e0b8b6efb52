package register_customer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SalonSchedulingService/internal/api/handlers"
	"github.com/m04kA/SalonSchedulingService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

// RegisterCustomerRequest тело запроса на регистрацию клиента
type RegisterCustomerRequest struct {
	Name string `json:"name"`
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

// Handle POST /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RegisterCustomer(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /customers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /customers - Failed to register customer: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /customers - Registered customer: customer_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.ToCustomerView(result))
}
