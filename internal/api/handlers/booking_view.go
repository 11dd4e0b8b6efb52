package handlers

import (
	"time"

	"github.com/m04kA/SalonSchedulingService/internal/service/bookings/models"
)

// BookingView общее HTTP представление бронирования,
// используется хендлерами решений и запросов
type BookingView struct {
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
	RejectionReason *string `json:"rejectionReason,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// BookingListView HTTP представление списка бронирований
type BookingListView struct {
	Bookings []*BookingView `json:"bookings"`
	Total    int            `json:"total"`
}

// ToBookingView конвертирует ответ сервиса бронирований
func ToBookingView(b *models.BookingResponse) *BookingView {
	return &BookingView{
		ID:              b.ID,
		SalonID:         b.SalonID,
		StaffID:         b.StaffID,
		CustomerID:      b.CustomerID,
		ServiceName:     b.ServiceName,
		ServiceKind:     b.ServiceKind,
		ServicePrice:    b.ServicePrice,
		DurationMinutes: b.DurationMinutes,
		StartTime:       b.StartTime.Format(time.RFC3339),
		EndTime:         b.EndTime.Format(time.RFC3339),
		Status:          b.Status,
		RejectionReason: b.RejectionReason,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

// ToBookingListView конвертирует список бронирований
func ToBookingListView(list *models.BookingListResponse) *BookingListView {
	out := &BookingListView{
		Bookings: make([]*BookingView, 0, len(list.Bookings)),
		Total:    list.Total,
	}
	for _, b := range list.Bookings {
		out.Bookings = append(out.Bookings, ToBookingView(b))
	}
	return out
}
