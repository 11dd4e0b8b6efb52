package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
	catalogRepo "github.com/m04kA/SalonSchedulingService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SalonSchedulingService/internal/infra/storage/customer"
	"github.com/m04kA/SalonSchedulingService/internal/service/catalog/models"
	"github.com/m04kA/SalonSchedulingService/pkg/ids"
	"github.com/m04kA/SalonSchedulingService/pkg/types"
)

// Service сервис администрирования каталога:
// салоны, услуги, штат, окна доступности и справочник клиентов
type Service struct {
	catalogRepo  CatalogRepository
	customerRepo CustomerRepository
	allocator    IDAllocator
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, customerRepo CustomerRepository, allocator IDAllocator, logger Logger) *Service {
	return &Service{
		catalogRepo:  catalogRepo,
		customerRepo: customerRepo,
		allocator:    allocator,
		logger:       logger,
	}
}

// CreateSalon создает салон с указанными часами работы
func (s *Service) CreateSalon(ctx context.Context, req *models.CreateSalonRequest) (*models.SalonResponse, error) {
	s.logger.Info("CreateSalon: name=%q", req.Name)

	start, err := types.NewTimeStringFromString(req.HoursStart)
	if err != nil {
		s.logger.Warn("CreateSalon: invalid hours start %q", req.HoursStart)
		return nil, fmt.Errorf("%w: invalid working hours start: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(req.HoursEnd)
	if err != nil {
		s.logger.Warn("CreateSalon: invalid hours end %q", req.HoursEnd)
		return nil, fmt.Errorf("%w: invalid working hours end: %v", ErrInvalidInput, err)
	}

	salon, err := domain.NewSalon(s.allocator.Generate(ids.PrefixSalon), req.Name, domain.WorkingHours{
		Start: start,
		End:   end,
	})
	if err != nil {
		s.logger.Warn("CreateSalon: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.catalogRepo.CreateSalon(ctx, salon)
	if err != nil {
		s.logger.Error("CreateSalon: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSalon: created salon id=%s", created.ID)
	return models.FromDomainSalon(created), nil
}

// GetSalon возвращает салон с услугами и штатом
func (s *Service) GetSalon(ctx context.Context, salonID string) (*models.SalonResponse, error) {
	salon, err := s.catalogRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSalonNotFound) {
			s.logger.Warn("GetSalon: salon id=%s not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetSalon: repository error for salon id=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSalon(salon), nil
}

// ListSalons возвращает все салоны
func (s *Service) ListSalons(ctx context.Context) ([]*models.SalonResponse, error) {
	salons, err := s.catalogRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListSalons: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	out := make([]*models.SalonResponse, 0, len(salons))
	for _, salon := range salons {
		out = append(out, models.FromDomainSalon(salon))
	}
	return out, nil
}

// FindSalonsWithService возвращает салоны, предоставляющие услугу
func (s *Service) FindSalonsWithService(ctx context.Context, serviceName string) ([]*models.SalonResponse, error) {
	if serviceName == "" {
		return nil, fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}

	salons, err := s.catalogRepo.FindSalonsWithService(ctx, serviceName)
	if err != nil {
		s.logger.Error("FindSalonsWithService: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	out := make([]*models.SalonResponse, 0, len(salons))
	for _, salon := range salons {
		out = append(out, models.FromDomainSalon(salon))
	}
	return out, nil
}

// AddService добавляет услугу в каталог салона.
// Название услуги должно быть уникально внутри салона.
func (s *Service) AddService(ctx context.Context, req *models.AddServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("AddService: salon=%s, name=%q, kind=%s", req.SalonID, req.Name, req.Kind)

	service := &domain.Service{
		Name:                 req.Name,
		Kind:                 domain.ServiceKind(req.Kind),
		DurationMinutes:      req.DurationMinutes,
		Price:                req.Price,
		HaircutType:          req.HaircutType,
		IncludesTrim:         req.IncludesTrim,
		ColorType:            req.ColorType,
		RequiresConsultation: req.RequiresConsultation,
	}
	if err := service.Validate(); err != nil {
		s.logger.Warn("AddService: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.catalogRepo.AddService(ctx, req.SalonID, service); err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrSalonNotFound):
			s.logger.Warn("AddService: salon id=%s not found", req.SalonID)
			return nil, ErrSalonNotFound
		case errors.Is(err, domain.ErrDuplicateService):
			s.logger.Warn("AddService: duplicate service %q in salon id=%s", req.Name, req.SalonID)
			return nil, ErrDuplicateService
		default:
			s.logger.Error("AddService: repository error: %v", err)
			return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("AddService: added service %q to salon id=%s", req.Name, req.SalonID)
	resp := models.FromDomainService(service)
	return &resp, nil
}

// AddStaff добавляет мастера в штат салона
func (s *Service) AddStaff(ctx context.Context, req *models.AddStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("AddStaff: salon=%s, name=%q", req.SalonID, req.Name)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: staff name is required", ErrInvalidInput)
	}

	staff := domain.NewStaff(s.allocator.Generate(ids.PrefixStaff), req.Name, req.Specialties)

	if err := s.catalogRepo.AddStaff(ctx, req.SalonID, staff); err != nil {
		if errors.Is(err, catalogRepo.ErrSalonNotFound) {
			s.logger.Warn("AddStaff: salon id=%s not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("AddStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddStaff: added staff id=%s to salon id=%s", staff.ID, req.SalonID)
	resp := models.FromDomainStaff(staff)
	return &resp, nil
}

// GrantCapability добавляет услугу в набор умений мастера
func (s *Service) GrantCapability(ctx context.Context, salonID, staffID, serviceName string) error {
	s.logger.Info("GrantCapability: salon=%s, staff=%s, service=%q", salonID, staffID, serviceName)

	if err := s.catalogRepo.GrantCapability(ctx, salonID, staffID, serviceName); err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrSalonNotFound):
			return ErrSalonNotFound
		case errors.Is(err, catalogRepo.ErrStaffNotFound):
			return ErrStaffNotFound
		case errors.Is(err, catalogRepo.ErrServiceNotFound):
			return ErrServiceNotFound
		default:
			s.logger.Error("GrantCapability: repository error: %v", err)
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}
	}
	return nil
}

// AddStaffWindow добавляет окно доступности мастера.
// Окно не должно пересекаться с уже добавленными окнами.
func (s *Service) AddStaffWindow(ctx context.Context, req *models.AddWindowRequest) error {
	s.logger.Info("AddStaffWindow: salon=%s, staff=%s, start=%s, end=%s",
		req.SalonID, req.StaffID, req.Start.Format(domain.DateTimeFormat), req.End.Format(domain.DateTimeFormat))

	w, err := domain.NewTimeWindow(req.Start, req.End)
	if err != nil {
		s.logger.Warn("AddStaffWindow: invalid window: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.catalogRepo.AddStaffWindow(ctx, req.SalonID, req.StaffID, w); err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrSalonNotFound):
			return ErrSalonNotFound
		case errors.Is(err, catalogRepo.ErrStaffNotFound):
			return ErrStaffNotFound
		case errors.Is(err, domain.ErrWindowConflict):
			s.logger.Warn("AddStaffWindow: window conflict for staff id=%s", req.StaffID)
			return ErrWindowConflict
		default:
			s.logger.Error("AddStaffWindow: repository error: %v", err)
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}
	}
	return nil
}

// RegisterCustomer регистрирует клиента в справочнике
func (s *Service) RegisterCustomer(ctx context.Context, name string) (*models.CustomerResponse, error) {
	s.logger.Info("RegisterCustomer: name=%q", name)

	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	c := domain.NewCustomer(s.allocator.Generate(ids.PrefixCustomer), name)
	created, err := s.customerRepo.Create(ctx, c)
	if err != nil {
		s.logger.Error("RegisterCustomer: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterCustomer: created customer id=%s", created.ID)
	return models.FromDomainCustomer(created), nil
}

// GetCustomer возвращает клиента с историей бронирований
func (s *Service) GetCustomer(ctx context.Context, customerID string) (*models.CustomerResponse, error) {
	c, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetCustomer: customer id=%s not found", customerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetCustomer: repository error for customer id=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCustomer(c), nil
}
