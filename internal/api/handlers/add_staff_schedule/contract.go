package add_staff_schedule

import (
	"context"

	"github.com/m04kA/SalonSchedulingService/internal/service/catalog/models"
)

type CatalogService interface {
	AddStaffWindow(ctx context.Context, req *models.AddWindowRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
