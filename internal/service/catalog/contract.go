package catalog

import (
	"context"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
)

// CatalogRepository интерфейс каталога салонов
type CatalogRepository interface {
	CreateSalon(ctx context.Context, salon *domain.Salon) (*domain.Salon, error)
	GetByID(ctx context.Context, id string) (*domain.Salon, error)
	List(ctx context.Context) ([]*domain.Salon, error)
	AddService(ctx context.Context, salonID string, service *domain.Service) error
	AddStaff(ctx context.Context, salonID string, staff *domain.Staff) error
	GetStaff(ctx context.Context, salonID, staffID string) (*domain.Staff, error)
	GrantCapability(ctx context.Context, salonID, staffID, serviceName string) error
	AddStaffWindow(ctx context.Context, salonID, staffID string, w domain.TimeWindow) error
	FindSalonsWithService(ctx context.Context, serviceName string) ([]*domain.Salon, error)
}

// CustomerRepository интерфейс справочника клиентов
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}

// IDAllocator интерфейс генератора идентификаторов
type IDAllocator interface {
	Generate(prefix string) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
