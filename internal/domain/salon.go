package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SalonSchedulingService/pkg/types"
)

var (
	// ErrEmptySalonName возвращается при пустом названии салона
	ErrEmptySalonName = errors.New("domain: salon name cannot be empty")

	// ErrDuplicateService возвращается при добавлении услуги с уже занятым названием
	ErrDuplicateService = errors.New("domain: service with this name already exists in the salon")
)

// WorkingHours часы работы салона в формате "HH:MM"
type WorkingHours struct {
	Start types.TimeString
	End   types.TimeString
}

// Salon салон: набор услуг, штат мастеров и часы работы.
// Уникальность названий услуг внутри салона обеспечивается здесь.
type Salon struct {
	ID           string
	Name         string
	WorkingHours WorkingHours
	services     []*Service
	staff        []*Staff
}

// NewSalon создает салон без услуг и мастеров
func NewSalon(id, name string, hours WorkingHours) (*Salon, error) {
	if name == "" {
		return nil, ErrEmptySalonName
	}
	return &Salon{ID: id, Name: name, WorkingHours: hours}, nil
}

// AddService добавляет услугу в каталог салона.
// Возвращает ErrDuplicateService, если название уже занято.
func (s *Salon) AddService(service *Service) error {
	if err := service.Validate(); err != nil {
		return err
	}
	for _, existing := range s.services {
		if existing.Name == service.Name {
			return ErrDuplicateService
		}
	}
	s.services = append(s.services, service)
	return nil
}

// AddStaff добавляет мастера в штат салона. Повторное добавление - no-op.
func (s *Salon) AddStaff(staff *Staff) {
	for _, existing := range s.staff {
		if existing.ID == staff.ID {
			return
		}
	}
	s.staff = append(s.staff, staff)
}

// ServiceByName возвращает услугу по названию или nil
func (s *Salon) ServiceByName(name string) *Service {
	for _, service := range s.services {
		if service.Name == name {
			return service
		}
	}
	return nil
}

// StaffByID возвращает мастера по идентификатору или nil
func (s *Salon) StaffByID(id string) *Staff {
	for _, staff := range s.staff {
		if staff.ID == id {
			return staff
		}
	}
	return nil
}

// Services возвращает копию списка услуг салона
func (s *Salon) Services() []*Service {
	out := make([]*Service, len(s.services))
	copy(out, s.services)
	return out
}

// Staff возвращает копию штата салона
func (s *Salon) Staff() []*Staff {
	out := make([]*Staff, len(s.staff))
	copy(out, s.staff)
	return out
}

// StaffForService возвращает мастеров, умеющих выполнять услугу,
// без учета их доступности
func (s *Salon) StaffForService(serviceName string) []*Staff {
	var out []*Staff
	for _, staff := range s.staff {
		if staff.CanPerform(serviceName) {
			out = append(out, staff)
		}
	}
	return out
}

// AvailableStaff возвращает мастеров, которые умеют выполнять услугу
// и свободны по своему реестру доступности на интервал
// [at, at+service.DurationMinutes)
func (s *Salon) AvailableStaff(service *Service, at time.Time) []*Staff {
	var out []*Staff
	for _, staff := range s.staff {
		if staff.CanPerform(service.Name) && staff.IsAvailableFor(at, service.DurationMinutes) {
			out = append(out, staff)
		}
	}
	return out
}

// OffersService возвращает true, если салон предоставляет услугу с таким названием
func (s *Salon) OffersService(serviceName string) bool {
	return s.ServiceByName(serviceName) != nil
}

// Clone возвращает глубокую копию салона вместе с услугами и штатом.
// Изменения копии не затрагивают оригинал и наоборот.
func (s *Salon) Clone() *Salon {
	clone := &Salon{ID: s.ID, Name: s.Name, WorkingHours: s.WorkingHours}
	for _, service := range s.services {
		copied := *service
		clone.services = append(clone.services, &copied)
	}
	for _, staff := range s.staff {
		clone.staff = append(clone.staff, staff.Clone())
	}
	return clone
}
