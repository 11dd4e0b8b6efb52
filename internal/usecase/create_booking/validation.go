package create_booking

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID == "" {
		return fmt.Errorf("%w: salonId is required", ErrInvalidInput)
	}
	if req.StaffID == "" {
		return fmt.Errorf("%w: staffId is required", ErrInvalidInput)
	}
	if req.CustomerID == "" {
		return fmt.Errorf("%w: customerId is required", ErrInvalidInput)
	}
	if req.ServiceName == "" {
		return fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	return nil
}
