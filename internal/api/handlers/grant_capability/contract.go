package grant_capability

import "context"

type CatalogService interface {
	GrantCapability(ctx context.Context, salonID, staffID, serviceName string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
