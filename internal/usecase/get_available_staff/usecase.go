package get_available_staff

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
	"github.com/m04kA/SalonSchedulingService/pkg/ptr"
)

// UseCase use case поиска свободных мастеров.
// Мастер свободен, если умеет выполнять услугу, его окно доступности
// целиком содержит интервал, и никакое его активное бронирование
// не пересекается с этим интервалом.
type UseCase struct {
	catalogRepo CatalogRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogRepo CatalogRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute возвращает мастеров салона, свободных для услуги в указанный момент
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableStaff: salon=%s, service=%q, at=%s",
		req.SalonID, req.ServiceName, req.At.Format(domain.DateTimeFormat))

	if req.SalonID == "" || req.ServiceName == "" || req.At.IsZero() {
		uc.logger.Warn("GetAvailableStaff: invalid input")
		return nil, ErrInvalidInput
	}

	salon, err := uc.catalogRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		uc.logger.Warn("GetAvailableStaff: salon id=%s not found", req.SalonID)
		return nil, ErrSalonNotFound
	}

	service := salon.ServiceByName(req.ServiceName)
	if service == nil {
		uc.logger.Warn("GetAvailableStaff: service %q not found in salon id=%s", req.ServiceName, req.SalonID)
		return nil, ErrServiceNotFound
	}

	end := req.At.Add(time.Duration(service.DurationMinutes) * time.Minute)

	resp := &Response{
		SalonID:         salon.ID,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		At:              req.At,
		Staff:           []StaffInfo{},
	}

	// Кандидаты по умению и окнам доступности
	for _, staff := range salon.AvailableStaff(service, req.At) {
		active, err := uc.bookingRepo.List(ctx, domain.LedgerFilter{
			StaffID:    ptr.Ptr(staff.ID),
			OnlyActive: true,
		})
		if err != nil {
			uc.logger.Error("GetAvailableStaff: failed to list bookings for staff id=%s: %v", staff.ID, err)
			return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		if hasOverlap(active, req.At, end) {
			continue
		}

		resp.Staff = append(resp.Staff, StaffInfo{
			ID:          staff.ID,
			Name:        staff.Name,
			Specialties: staff.Specialties,
		})
	}

	uc.logger.Info("GetAvailableStaff: found %d available staff in salon id=%s", len(resp.Staff), salon.ID)
	return resp, nil
}

// hasOverlap проверяет строгое пересечение интервала [start, end)
// с активными бронированиями
func hasOverlap(bookings []*domain.Booking, start, end time.Time) bool {
	for _, b := range bookings {
		if b.StartTime.Before(end) && start.Before(b.End()) {
			return true
		}
	}
	return false
}
