package create_booking

import (
	"time"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
)

// Request модель запроса на бронирование
type Request struct {
	SalonID     string    // идентификатор салона
	StaffID     string    // идентификатор мастера
	CustomerID  string    // идентификатор клиента
	ServiceName string    // название услуги (идентичность услуги внутри салона)
	StartTime   time.Time // момент начала
}

// Response модель ответа с допущенным бронированием
type Response struct {
	ID              string
	SalonID         string
	StaffID         string
	CustomerID      string
	ServiceName     string
	ServiceKind     string
	ServicePrice    float64
	DurationMinutes int
	StartTime       time.Time
	EndTime         time.Time // вычисляется, не хранится
	Status          string
	CreatedAt       time.Time
}

// fromDomain конвертирует бронирование в ответ usecase
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		SalonID:         b.SalonID,
		StaffID:         b.StaffID,
		CustomerID:      b.CustomerID,
		ServiceName:     b.ServiceName,
		ServiceKind:     string(b.ServiceKind),
		ServicePrice:    b.ServicePrice,
		DurationMinutes: b.DurationMinutes,
		StartTime:       b.StartTime,
		EndTime:         b.End(),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}
