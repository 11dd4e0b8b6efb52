package get_customer_bookings

import (
	"context"

	"github.com/m04kA/SalonSchedulingService/internal/service/bookings/models"
)

type BookingService interface {
	ListByCustomer(ctx context.Context, customerID string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
