package models

import (
	"time"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
)

// BookingResponse представление бронирования для вызывающих
type BookingResponse struct {
	ID              string
	SalonID         string
	StaffID         string
	CustomerID      string
	ServiceName     string
	ServiceKind     string
	ServicePrice    float64
	DurationMinutes int
	StartTime       time.Time
	EndTime         time.Time
	Status          string
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
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
		RejectionReason: b.RejectionReason,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: out,
		Total:    len(out),
	}
}
