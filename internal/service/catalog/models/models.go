package models

import (
	"time"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
)

// CreateSalonRequest запрос на создание салона
type CreateSalonRequest struct {
	Name       string
	HoursStart string // "HH:MM"
	HoursEnd   string // "HH:MM"
}

// AddServiceRequest запрос на добавление услуги в салон
type AddServiceRequest struct {
	SalonID         string
	Name            string
	Kind            string
	DurationMinutes int
	Price           float64

	// Вариантные поля
	HaircutType          string
	IncludesTrim         bool
	ColorType            string
	RequiresConsultation bool
}

// AddStaffRequest запрос на добавление мастера в штат
type AddStaffRequest struct {
	SalonID     string
	Name        string
	Specialties []string
}

// AddWindowRequest запрос на добавление окна доступности мастера
type AddWindowRequest struct {
	SalonID string
	StaffID string
	Start   time.Time
	End     time.Time
}

// ServiceResponse представление услуги
type ServiceResponse struct {
	Name            string
	Kind            string
	DurationMinutes int
	Price           float64
	Description     string
}

// WindowResponse представление окна доступности
type WindowResponse struct {
	Start time.Time
	End   time.Time
}

// StaffResponse представление мастера
type StaffResponse struct {
	ID           string
	Name         string
	Specialties  []string
	Capabilities []string
	Windows      []WindowResponse
}

// SalonResponse представление салона
type SalonResponse struct {
	ID         string
	Name       string
	HoursStart string
	HoursEnd   string
	Services   []ServiceResponse
	Staff      []StaffResponse
}

// CustomerResponse представление клиента
type CustomerResponse struct {
	ID       string
	Name     string
	Bookings []string // идентификаторы бронирований из истории
}

// FromDomainService конвертирует domain.Service
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		Name:            s.Name,
		Kind:            string(s.Kind),
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Description:     s.Description(),
	}
}

// FromDomainStaff конвертирует domain.Staff
func FromDomainStaff(s *domain.Staff) StaffResponse {
	windows := s.Windows()
	out := StaffResponse{
		ID:           s.ID,
		Name:         s.Name,
		Specialties:  s.Specialties,
		Capabilities: s.Capabilities(),
		Windows:      make([]WindowResponse, 0, len(windows)),
	}
	for _, w := range windows {
		out.Windows = append(out.Windows, WindowResponse{Start: w.Start(), End: w.End()})
	}
	return out
}

// FromDomainSalon конвертирует domain.Salon
func FromDomainSalon(s *domain.Salon) *SalonResponse {
	out := &SalonResponse{
		ID:         s.ID,
		Name:       s.Name,
		HoursStart: s.WorkingHours.Start.String(),
		HoursEnd:   s.WorkingHours.End.String(),
		Services:   []ServiceResponse{},
		Staff:      []StaffResponse{},
	}
	for _, service := range s.Services() {
		out.Services = append(out.Services, FromDomainService(service))
	}
	for _, staff := range s.Staff() {
		out.Staff = append(out.Staff, FromDomainStaff(staff))
	}
	return out
}

// FromDomainCustomer конвертирует domain.Customer
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:       c.ID,
		Name:     c.Name,
		Bookings: c.BookingHistory(),
	}
}
