package get_booking_stats

import "context"

type BookingService interface {
	CountAll(ctx context.Context) (int, error)
	CountPending(ctx context.Context) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
