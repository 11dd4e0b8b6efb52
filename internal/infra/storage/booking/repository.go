package booking

import (
	"context"
	"sync"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
)

// Repository in-memory леджер бронирований.
// Авторитетное хранилище всех бронирований: записи никогда не удаляются,
// история сохраняется для отчетности. Порядок вставки сохраняется в выборках.
type Repository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Booking
	ordered []*domain.Booking
}

// NewRepository создает пустой леджер
func NewRepository() *Repository {
	return &Repository{
		byID: make(map[string]*domain.Booking),
	}
}

// Create сохраняет бронирование в леджере.
// Идентификатор должен быть присвоен вызывающим до вставки.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[b.ID]; exists {
		return nil, ErrDuplicateID
	}

	r.byID[b.ID] = b
	r.ordered = append(r.ordered, b)
	return b, nil
}

// GetByID возвращает копию бронирования по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

// List возвращает копии бронирований, проходящих фильтр, в порядке вставки
func (r *Repository) List(ctx context.Context, filter domain.LedgerFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Booking
	for _, b := range r.ordered {
		if filter.Matches(b) {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

// Update применяет mutate к авторитетной копии бронирования под блокировкой.
// Если mutate возвращает ошибку, состояние бронирования не меняется
// (mutate обязана быть атомарной, переходы статуса в domain такими являются).
func (r *Repository) Update(ctx context.Context, id string, mutate func(b *domain.Booking) error) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	if err := mutate(b); err != nil {
		return nil, err
	}
	return cloneBooking(b), nil
}

// Count возвращает общее количество бронирований в леджере
func (r *Repository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered), nil
}

// CountByStatus возвращает количество бронирований в указанном статусе
func (r *Repository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, b := range r.ordered {
		if b.Status == status {
			count++
		}
	}
	return count, nil
}

// cloneBooking возвращает копию бронирования.
// Вызывающий не может изменить авторитетную копию леджера через результат.
func cloneBooking(b *domain.Booking) *domain.Booking {
	clone := *b
	if b.RejectionReason != nil {
		reason := *b.RejectionReason
		clone.RejectionReason = &reason
	}
	return &clone
}
