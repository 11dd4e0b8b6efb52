package bookings

import (
	"context"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
)

// BookingRepository интерфейс леджера бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.LedgerFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, id string, mutate func(b *domain.Booking) error) (*domain.Booking, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int, error)
}

// Metrics интерфейс метрик статусов бронирований
type Metrics interface {
	SetBookingsByStatus(status string, count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
