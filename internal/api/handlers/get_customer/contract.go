package get_customer

import (
	"context"

	"github.com/m04kA/SalonSchedulingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetCustomer(ctx context.Context, customerID string) (*models.CustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
