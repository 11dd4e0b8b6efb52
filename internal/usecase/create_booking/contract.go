package create_booking

import (
	"context"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
)

// BookingRepository интерфейс леджера бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	List(ctx context.Context, filter domain.LedgerFilter) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс каталога салонов
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Salon, error)
}

// CustomerRepository интерфейс справочника клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	AppendBooking(ctx context.Context, customerID, bookingID string) error
}

// KeyLocker сериализует допуск бронирований по мастеру.
// Два конкурентных запроса к одному мастеру не должны оба увидеть
// "конфликтов нет" и оба зафиксироваться.
type KeyLocker interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// IDAllocator интерфейс генератора идентификаторов
type IDAllocator interface {
	Generate(prefix string) string
}

// Metrics интерфейс бизнес-метрик допуска
type Metrics interface {
	BookingCreated()
	BookingDenied(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
