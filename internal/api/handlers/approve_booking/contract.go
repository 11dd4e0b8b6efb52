package approve_booking

import (
	"context"

	"github.com/m04kA/SalonSchedulingService/internal/service/bookings/models"
)

type BookingService interface {
	Approve(ctx context.Context, bookingID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
