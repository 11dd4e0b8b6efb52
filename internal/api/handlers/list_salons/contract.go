package list_salons

import (
	"context"

	"github.com/m04kA/SalonSchedulingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListSalons(ctx context.Context) ([]*models.SalonResponse, error)
	FindSalonsWithService(ctx context.Context, serviceName string) ([]*models.SalonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
