package get_available_staff

import (
	"context"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
)

// CatalogRepository интерфейс каталога салонов
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Salon, error)
}

// BookingRepository интерфейс леджера бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.LedgerFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
