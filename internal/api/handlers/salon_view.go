package handlers

import (
	"time"

	"github.com/m04kA/SalonSchedulingService/internal/service/catalog/models"
)

// ServiceView представление услуги в HTTP-ответе
type ServiceView struct {
	Name            string  `json:"name"`
	Kind            string  `json:"kind"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Description     string  `json:"description"`
}

// WindowView представление окна доступности в HTTP-ответе
type WindowView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// StaffView представление мастера в HTTP-ответе
type StaffView struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Specialties  []string     `json:"specialties"`
	Capabilities []string     `json:"capabilities"`
	Windows      []WindowView `json:"windows"`
}

// SalonView представление салона в HTTP-ответе
type SalonView struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Hours    string        `json:"hours"`
	Services []ServiceView `json:"services"`
	Staff    []StaffView   `json:"staff"`
}

// SalonListView список салонов
type SalonListView struct {
	Salons []SalonView `json:"salons"`
	Total  int         `json:"total"`
}

// CustomerView представление клиента в HTTP-ответе
type CustomerView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Bookings []string `json:"bookings"`
}

// ToServiceView конвертирует модель услуги сервисного слоя
func ToServiceView(s models.ServiceResponse) ServiceView {
	return ServiceView{
		Name:            s.Name,
		Kind:            s.Kind,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Description:     s.Description,
	}
}

// ToStaffView конвертирует модель мастера сервисного слоя
func ToStaffView(s models.StaffResponse) StaffView {
	out := StaffView{
		ID:           s.ID,
		Name:         s.Name,
		Specialties:  s.Specialties,
		Capabilities: s.Capabilities,
		Windows:      make([]WindowView, 0, len(s.Windows)),
	}
	for _, w := range s.Windows {
		out.Windows = append(out.Windows, WindowView{
			Start: w.Start.Format(time.RFC3339),
			End:   w.End.Format(time.RFC3339),
		})
	}
	return out
}

// ToSalonView конвертирует модель салона сервисного слоя
func ToSalonView(s *models.SalonResponse) *SalonView {
	out := &SalonView{
		ID:       s.ID,
		Name:     s.Name,
		Hours:    s.HoursStart + "-" + s.HoursEnd,
		Services: make([]ServiceView, 0, len(s.Services)),
		Staff:    make([]StaffView, 0, len(s.Staff)),
	}
	for _, service := range s.Services {
		out.Services = append(out.Services, ToServiceView(service))
	}
	for _, staff := range s.Staff {
		out.Staff = append(out.Staff, ToStaffView(staff))
	}
	return out
}

// ToSalonListView конвертирует список салонов
func ToSalonListView(salons []*models.SalonResponse) *SalonListView {
	out := &SalonListView{
		Salons: make([]SalonView, 0, len(salons)),
		Total:  len(salons),
	}
	for _, s := range salons {
		out.Salons = append(out.Salons, *ToSalonView(s))
	}
	return out
}

// ToCustomerView конвертирует модель клиента сервисного слоя
func ToCustomerView(c *models.CustomerResponse) *CustomerView {
	return &CustomerView{
		ID:       c.ID,
		Name:     c.Name,
		Bookings: c.Bookings,
	}
}
