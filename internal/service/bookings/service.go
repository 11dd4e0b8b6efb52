package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SalonSchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SalonSchedulingService/internal/service/bookings/models"
	"github.com/m04kA/SalonSchedulingService/pkg/ptr"
)

// Service сервис решений по бронированиям и запросов к леджеру.
// Решения (approve/reject/complete/cancel) применяют машину состояний
// домена и никогда не перезапускают проверку конфликтов: допущенное
// бронирование сохраняет свой слот.
type Service struct {
	bookingRepo BookingRepository
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, m Metrics, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		metrics:     m,
		logger:      logger,
	}
}

// Approve переводит бронирование requested -> approved
func (s *Service) Approve(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	s.logger.Info("Approve: booking id=%s", bookingID)
	return s.transition(ctx, bookingID, func(b *domain.Booking) error {
		return b.Approve()
	})
}

// Reject переводит бронирование requested -> rejected.
// Причина обязательна и сохраняется в бронировании.
func (s *Service) Reject(ctx context.Context, bookingID, reason string) (*models.BookingResponse, error) {
	s.logger.Info("Reject: booking id=%s", bookingID)
	if reason == "" {
		s.logger.Warn("Reject: empty reason for booking id=%s", bookingID)
		return nil, ErrEmptyReason
	}
	return s.transition(ctx, bookingID, func(b *domain.Booking) error {
		return b.Reject(reason)
	})
}

// Complete переводит бронирование approved -> completed
func (s *Service) Complete(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	s.logger.Info("Complete: booking id=%s", bookingID)
	return s.transition(ctx, bookingID, func(b *domain.Booking) error {
		return b.Complete()
	})
}

// Cancel переводит бронирование requested|approved -> cancelled
func (s *Service) Cancel(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: booking id=%s", bookingID)
	return s.transition(ctx, bookingID, func(b *domain.Booking) error {
		return b.Cancel()
	})
}

// transition применяет переход статуса под блокировкой леджера
// и обновляет gauge статусов
func (s *Service) transition(ctx context.Context, bookingID string, mutate func(b *domain.Booking) error) (*models.BookingResponse, error) {
	updated, err := s.bookingRepo.Update(ctx, bookingID, mutate)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("transition: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, domain.ErrInvalidTransition):
			s.logger.Warn("transition: booking id=%s: %v", bookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		case errors.Is(err, domain.ErrEmptyRejectionReason):
			s.logger.Warn("transition: booking id=%s: empty rejection reason", bookingID)
			return nil, ErrEmptyReason
		default:
			s.logger.Error("transition: booking id=%s: repository error: %v", bookingID, err)
			return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}
	}

	s.refreshStatusGauges(ctx)
	s.logger.Info("transition: booking id=%s is now %s", bookingID, updated.Status)
	return models.FromDomainBooking(updated), nil
}

// GetByID возвращает бронирование по идентификатору
func (s *Service) GetByID(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBooking(b), nil
}

// ListByStatus возвращает бронирования в указанном статусе
func (s *Service) ListByStatus(ctx context.Context, status string) (*models.BookingListResponse, error) {
	domainStatus, err := domain.ToBookingStatus(status)
	if err != nil {
		s.logger.Warn("ListByStatus: invalid status %q", status)
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, status)
	}
	return s.list(ctx, domain.LedgerFilter{Status: &domainStatus})
}

// ListByCustomer возвращает историю бронирований клиента
func (s *Service) ListByCustomer(ctx context.Context, customerID string) (*models.BookingListResponse, error) {
	return s.list(ctx, domain.LedgerFilter{CustomerID: ptr.Ptr(customerID)})
}

// ListByStaff возвращает бронирования мастера
func (s *Service) ListByStaff(ctx context.Context, staffID string) (*models.BookingListResponse, error) {
	return s.list(ctx, domain.LedgerFilter{StaffID: ptr.Ptr(staffID)})
}

// ListBySalon возвращает бронирования салона с фильтрацией по статусу и дню
func (s *Service) ListBySalon(ctx context.Context, salonID string, status *string, date *time.Time) (*models.BookingListResponse, error) {
	filter := domain.LedgerFilter{SalonID: ptr.Ptr(salonID), Date: date}
	if status != nil {
		domainStatus, err := domain.ToBookingStatus(*status)
		if err != nil {
			s.logger.Warn("ListBySalon: invalid status %q", *status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *status)
		}
		filter.Status = &domainStatus
	}
	return s.list(ctx, filter)
}

// List возвращает бронирования с опциональными фильтрами по статусу и дню
func (s *Service) List(ctx context.Context, status *string, date *time.Time) (*models.BookingListResponse, error) {
	filter := domain.LedgerFilter{Date: date}
	if status != nil {
		domainStatus, err := domain.ToBookingStatus(*status)
		if err != nil {
			s.logger.Warn("List: invalid status %q", *status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *status)
		}
		filter.Status = &domainStatus
	}
	return s.list(ctx, filter)
}

// ListByDate возвращает бронирования на календарный день
// (момент начала усекается до дня)
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	return s.list(ctx, domain.LedgerFilter{Date: &date})
}

// CountAll возвращает общее количество бронирований в леджере
func (s *Service) CountAll(ctx context.Context) (int, error) {
	count, err := s.bookingRepo.Count(ctx)
	if err != nil {
		s.logger.Error("CountAll: repository error: %v", err)
		return 0, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return count, nil
}

// CountPending возвращает количество бронирований, ожидающих решения
func (s *Service) CountPending(ctx context.Context) (int, error) {
	count, err := s.bookingRepo.CountByStatus(ctx, domain.StatusRequested)
	if err != nil {
		s.logger.Error("CountPending: repository error: %v", err)
		return 0, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return count, nil
}

func (s *Service) list(ctx context.Context, filter domain.LedgerFilter) (*models.BookingListResponse, error) {
	result, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBookingList(result), nil
}

// refreshStatusGauges пересчитывает gauge по всем статусам.
// Ошибки подсчета логируются и не влияют на результат перехода.
func (s *Service) refreshStatusGauges(ctx context.Context) {
	statuses := []domain.BookingStatus{
		domain.StatusRequested,
		domain.StatusApproved,
		domain.StatusRejected,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}
	for _, status := range statuses {
		count, err := s.bookingRepo.CountByStatus(ctx, status)
		if err != nil {
			s.logger.Error("refreshStatusGauges: failed to count status=%s: %v", status, err)
			return
		}
		s.metrics.SetBookingsByStatus(string(status), count)
	}
}
