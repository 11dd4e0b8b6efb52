package domain

import (
	"errors"
	"fmt"
	"time"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusRequested BookingStatus = "requested"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

var (
	// ErrStaffCannotPerform возвращается, когда услуги нет в наборе умений мастера
	ErrStaffCannotPerform = errors.New("domain: staff member cannot perform this service")

	// ErrStaffNotAvailable возвращается, когда ни одно окно доступности мастера
	// не содержит целиком запрошенный интервал
	ErrStaffNotAvailable = errors.New("domain: staff member is not available at the requested time")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("domain: invalid booking status transition")

	// ErrEmptyRejectionReason возвращается при отклонении без причины
	ErrEmptyRejectionReason = errors.New("domain: rejection reason cannot be empty")
)

// Booking бронирование: связывает клиента, мастера и услугу с моментом начала.
// Авторитетная копия каждого бронирования принадлежит леджеру,
// только он меняет статус. Время окончания всегда вычисляется, не хранится.
type Booking struct {
	ID         string
	SalonID    string
	StaffID    string
	CustomerID string

	// Денормализованные данные услуги для истории
	ServiceName     string
	ServiceKind     ServiceKind
	ServicePrice    float64
	DurationMinutes int

	StartTime       time.Time
	Status          BookingStatus
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBooking конструирует бронирование со статусом requested.
// Проверяет умение мастера и вхождение интервала в его окна доступности.
// Обе проверки атомарны: при любой ошибке бронирование не создается.
// Конфликты с другими бронированиями здесь НЕ проверяются - это делает леджер.
func NewBooking(salon *Salon, staff *Staff, customer *Customer, service *Service, start time.Time) (*Booking, error) {
	if !staff.CanPerform(service.Name) {
		return nil, fmt.Errorf("%w: staff=%s service=%s", ErrStaffCannotPerform, staff.ID, service.Name)
	}
	if !staff.IsAvailableFor(start, service.DurationMinutes) {
		return nil, fmt.Errorf("%w: staff=%s start=%s", ErrStaffNotAvailable, staff.ID, start.Format(time.RFC3339))
	}

	now := time.Now()
	return &Booking{
		SalonID:         salon.ID,
		StaffID:         staff.ID,
		CustomerID:      customer.ID,
		ServiceName:     service.Name,
		ServiceKind:     service.Kind,
		ServicePrice:    service.Price,
		DurationMinutes: service.DurationMinutes,
		StartTime:       start,
		Status:          StatusRequested,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// End возвращает момент окончания бронирования
func (b *Booking) End() time.Time {
	return b.StartTime.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// Approve переводит бронирование requested -> approved
func (b *Booking) Approve() error {
	if b.Status != StatusRequested {
		return fmt.Errorf("%w: cannot approve booking in status %q", ErrInvalidTransition, b.Status)
	}
	b.setStatus(StatusApproved)
	return nil
}

// Reject переводит бронирование requested -> rejected.
// Причина обязательна и сохраняется в бронировании.
func (b *Booking) Reject(reason string) error {
	if b.Status != StatusRequested {
		return fmt.Errorf("%w: cannot reject booking in status %q", ErrInvalidTransition, b.Status)
	}
	if reason == "" {
		return ErrEmptyRejectionReason
	}
	b.RejectionReason = &reason
	b.setStatus(StatusRejected)
	return nil
}

// Complete переводит бронирование approved -> completed
func (b *Booking) Complete() error {
	if b.Status != StatusApproved {
		return fmt.Errorf("%w: cannot complete booking in status %q", ErrInvalidTransition, b.Status)
	}
	b.setStatus(StatusCompleted)
	return nil
}

// Cancel переводит бронирование requested|approved -> cancelled.
// Завершенное бронирование отменить нельзя: услуга уже оказана.
func (b *Booking) Cancel() error {
	if b.Status != StatusRequested && b.Status != StatusApproved {
		return fmt.Errorf("%w: cannot cancel booking in status %q", ErrInvalidTransition, b.Status)
	}
	b.setStatus(StatusCancelled)
	return nil
}

func (b *Booking) setStatus(status BookingStatus) {
	b.Status = status
	b.UpdatedAt = time.Now()
}

// IsActive возвращает true, если бронирование занимает слот мастера.
// Отклоненные и отмененные бронирования слот освобождают.
func (b *Booking) IsActive() bool {
	return b.Status != StatusRejected && b.Status != StatusCancelled
}

// IsTerminal возвращает true для конечных статусов
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusRejected || b.Status == StatusCompleted || b.Status == StatusCancelled
}

// ConflictsWith возвращает true, если оба бронирования относятся к одному
// мастеру и их интервалы [start, end) пересекаются (строгое пересечение,
// соприкасающиеся границы не конфликтуют)
func (b *Booking) ConflictsWith(other *Booking) bool {
	if b.StaffID != other.StaffID {
		return false
	}
	return b.StartTime.Before(other.End()) && other.StartTime.Before(b.End())
}

// ActiveStatuses статусы, занимающие слот мастера
var ActiveStatuses = []BookingStatus{
	StatusRequested,
	StatusApproved,
	StatusCompleted,
}

// InactiveStatuses статусы, освобождающие слот мастера
var InactiveStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelled,
}

// ToBookingStatus валидирует строковый статус
func ToBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusRequested, StatusApproved, StatusRejected, StatusCompleted, StatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("domain: invalid booking status %q", s)
	}
}
