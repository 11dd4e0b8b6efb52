package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
)

// Repository in-memory каталог салонов.
// Салон владеет своими услугами и штатом, поэтому все мутации
// услуг, умений и окон доступности проходят через этот репозиторий
// под общей блокировкой каталога. Репозиторий владеет авторитетными
// копиями: запись сохраняет копию, выборки возвращают копии, поэтому
// чтение снимка никогда не гонится с мутациями каталога.
type Repository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Salon
	ordered []*domain.Salon
}

// NewRepository создает пустой каталог
func NewRepository() *Repository {
	return &Repository{
		byID: make(map[string]*domain.Salon),
	}
}

// CreateSalon сохраняет копию салона в каталоге
func (r *Repository) CreateSalon(ctx context.Context, salon *domain.Salon) (*domain.Salon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[salon.ID]; exists {
		return nil, ErrDuplicateSalonID
	}

	stored := salon.Clone()
	r.byID[stored.ID] = stored
	r.ordered = append(r.ordered, stored)
	return salon, nil
}

// GetByID возвращает копию салона по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Salon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	salon, ok := r.byID[id]
	if !ok {
		return nil, ErrSalonNotFound
	}
	return salon.Clone(), nil
}

// GetByName возвращает копию салона по названию (без учета регистра)
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Salon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, salon := range r.ordered {
		if strings.EqualFold(salon.Name, name) {
			return salon.Clone(), nil
		}
	}
	return nil, ErrSalonNotFound
}

// List возвращает копии всех салонов в порядке вставки
func (r *Repository) List(ctx context.Context) ([]*domain.Salon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Salon, 0, len(r.ordered))
	for _, salon := range r.ordered {
		out = append(out, salon.Clone())
	}
	return out, nil
}

// AddService добавляет услугу в каталог салона.
// Уникальность названия услуги внутри салона обеспечивает domain.Salon.
func (r *Repository) AddService(ctx context.Context, salonID string, service *domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	salon, ok := r.byID[salonID]
	if !ok {
		return ErrSalonNotFound
	}
	copied := *service
	return salon.AddService(&copied)
}

// AddStaff добавляет мастера в штат салона
func (r *Repository) AddStaff(ctx context.Context, salonID string, staff *domain.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	salon, ok := r.byID[salonID]
	if !ok {
		return ErrSalonNotFound
	}
	salon.AddStaff(staff.Clone())
	return nil
}

// GetStaff возвращает копию мастера салона
func (r *Repository) GetStaff(ctx context.Context, salonID, staffID string) (*domain.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	salon, ok := r.byID[salonID]
	if !ok {
		return nil, ErrSalonNotFound
	}
	staff := salon.StaffByID(staffID)
	if staff == nil {
		return nil, ErrStaffNotFound
	}
	return staff.Clone(), nil
}

// GetService возвращает копию услуги салона по названию
func (r *Repository) GetService(ctx context.Context, salonID, serviceName string) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	salon, ok := r.byID[salonID]
	if !ok {
		return nil, ErrSalonNotFound
	}
	service := salon.ServiceByName(serviceName)
	if service == nil {
		return nil, ErrServiceNotFound
	}
	copied := *service
	return &copied, nil
}

// GrantCapability добавляет услугу в набор умений мастера.
// Услуга должна существовать в каталоге салона.
func (r *Repository) GrantCapability(ctx context.Context, salonID, staffID, serviceName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	salon, ok := r.byID[salonID]
	if !ok {
		return ErrSalonNotFound
	}
	if salon.ServiceByName(serviceName) == nil {
		return ErrServiceNotFound
	}
	staff := salon.StaffByID(staffID)
	if staff == nil {
		return ErrStaffNotFound
	}
	staff.GrantCapability(serviceName)
	return nil
}

// AddStaffWindow добавляет окно доступности мастера
func (r *Repository) AddStaffWindow(ctx context.Context, salonID, staffID string, w domain.TimeWindow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	salon, ok := r.byID[salonID]
	if !ok {
		return ErrSalonNotFound
	}
	staff := salon.StaffByID(staffID)
	if staff == nil {
		return ErrStaffNotFound
	}
	return staff.AddWindow(w)
}

// FindSalonsWithService возвращает копии салонов, предоставляющих услугу с таким названием
func (r *Repository) FindSalonsWithService(ctx context.Context, serviceName string) ([]*domain.Salon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Salon
	for _, salon := range r.ordered {
		if salon.OffersService(serviceName) {
			out = append(out, salon.Clone())
		}
	}
	return out, nil
}
