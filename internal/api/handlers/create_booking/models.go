package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SalonSchedulingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SalonID     string `json:"salonId"`
	StaffID     string `json:"staffId"`
	CustomerID  string `json:"customerId"`
	ServiceName string `json:"serviceName"`
	StartTime   string `json:"startTime"` // RFC3339, например "2025-10-15T10:00:00+03:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	SalonID         string  `json:"salonId"`
	StaffID         string  `json:"staffId"`
	CustomerID      string  `json:"customerId"`
	ServiceName     string  `json:"serviceName"`
	ServiceKind     string  `json:"serviceKind"`
	ServicePrice    float64 `json:"servicePrice"`
	DurationMinutes int     `json:"durationMinutes"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		SalonID:     r.SalonID,
		StaffID:     r.StaffID,
		CustomerID:  r.CustomerID,
		ServiceName: r.ServiceName,
		StartTime:   start,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		SalonID:         resp.SalonID,
		StaffID:         resp.StaffID,
		CustomerID:      resp.CustomerID,
		ServiceName:     resp.ServiceName,
		ServiceKind:     resp.ServiceKind,
		ServicePrice:    resp.ServicePrice,
		DurationMinutes: resp.DurationMinutes,
		StartTime:       resp.StartTime.Format(time.RFC3339),
		EndTime:         resp.EndTime.Format(time.RFC3339),
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
