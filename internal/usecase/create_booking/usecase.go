package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
	"github.com/m04kA/SalonSchedulingService/pkg/ids"
	"github.com/m04kA/SalonSchedulingService/pkg/metrics"
	"github.com/m04kA/SalonSchedulingService/pkg/ptr"
)

// UseCase use case допуска бронирования.
//
// Допуск состоит из двух независимых проверок, и обе обязательны:
// вхождение интервала в окно доступности мастера (проверяет конструктор
// бронирования) и отсутствие пересечений с уже допущенными активными
// бронированиями (скан леджера). Широкое окно доступности не гарантирует
// свободный слот - внутри него уже может сидеть другое бронирование.
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	customerRepo CustomerRepository
	locker       KeyLocker
	allocator    IDAllocator
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	customerRepo CustomerRepository,
	locker KeyLocker,
	allocator IDAllocator,
	m Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		customerRepo: customerRepo,
		locker:       locker,
		allocator:    allocator,
		metrics:      m,
		logger:       logger,
	}
}

// Execute выполняет допуск бронирования.
// Скан конфликтов и вставка выполняются атомарно под блокировкой мастера:
// из двух конкурентных запросов на пересекающиеся интервалы
// фиксируется ровно один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: salon=%s, staff=%s, customer=%s, service=%q, start=%s",
		req.SalonID, req.StaffID, req.CustomerID, req.ServiceName, req.StartTime.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим салон, мастера, клиента и услугу
	salon, err := uc.catalogRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		uc.logger.Warn("CreateBooking: salon id=%s not found", req.SalonID)
		return nil, ErrSalonNotFound
	}

	staff := salon.StaffByID(req.StaffID)
	if staff == nil {
		uc.logger.Warn("CreateBooking: staff id=%s not found in salon id=%s", req.StaffID, req.SalonID)
		return nil, ErrStaffNotFound
	}

	service := salon.ServiceByName(req.ServiceName)
	if service == nil {
		uc.logger.Warn("CreateBooking: service %q not found in salon id=%s", req.ServiceName, req.SalonID)
		return nil, ErrServiceNotFound
	}

	customer, err := uc.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		uc.logger.Warn("CreateBooking: customer id=%s not found", req.CustomerID)
		return nil, ErrCustomerNotFound
	}

	var result *domain.Booking

	// 3. Допуск под блокировкой мастера: конструирование кандидата,
	// скан конфликтов и вставка - одна критическая секция
	err = uc.locker.Do(ctx, staff.ID, func(lockCtx context.Context) error {
		// 3.1. Конструируем кандидата (проверки умения и окна доступности).
		// При ошибке кандидат не существует - частичных бронирований не бывает.
		candidate, err := domain.NewBooking(salon, staff, customer, service, req.StartTime)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrStaffCannotPerform):
				uc.logger.Warn("CreateBooking: staff id=%s cannot perform %q", staff.ID, service.Name)
				uc.metrics.BookingDenied(metrics.DenyReasonIncompatible)
				return ErrIncompatibleCapability
			case errors.Is(err, domain.ErrStaffNotAvailable):
				uc.logger.Warn("CreateBooking: staff id=%s not available at %s",
					staff.ID, req.StartTime.Format(domain.DateTimeFormat))
				uc.metrics.BookingDenied(metrics.DenyReasonUnavailable)
				return ErrOutsideAvailability
			default:
				uc.logger.Error("CreateBooking: failed to construct booking: %v", err)
				return fmt.Errorf("%w: failed to construct booking: %v", ErrInternal, err)
			}
		}

		// 3.2. Скан активных бронирований мастера
		active, err := uc.bookingRepo.List(lockCtx, domain.LedgerFilter{
			StaffID:    ptr.Ptr(staff.ID),
			OnlyActive: true,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list active bookings: %v", err)
			return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
		}

		// 3.3. Проверка пересечений. Соприкасающиеся границы не конфликтуют:
		// бронирования впритык друг к другу легальны.
		for _, existing := range active {
			if candidate.ConflictsWith(existing) {
				uc.logger.Warn("CreateBooking: conflict with booking id=%s for staff id=%s",
					existing.ID, staff.ID)
				uc.metrics.BookingDenied(metrics.DenyReasonConflict)
				return fmt.Errorf("%w: conflicting booking id=%s", ErrSchedulingConflict, existing.ID)
			}
		}

		// 3.4. Присваиваем идентификатор и фиксируем кандидата
		candidate.ID = uc.allocator.Generate(ids.PrefixBooking)

		created, err := uc.bookingRepo.Create(lockCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to store booking: %v", err)
			return fmt.Errorf("%w: failed to store booking: %v", ErrInternal, err)
		}

		// 3.5. Регистрируем идентификатор в истории клиента (back-reference)
		if err := uc.customerRepo.AppendBooking(lockCtx, customer.ID, created.ID); err != nil {
			uc.logger.Error("CreateBooking: failed to append booking to customer history: %v", err)
			return fmt.Errorf("%w: failed to update customer history: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.BookingCreated()
	uc.logger.Info("CreateBooking: successfully admitted booking id=%s at status=%s", result.ID, result.Status)

	return fromDomain(result), nil
}
