package customer

import (
	"context"
	"sync"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
)

// Repository in-memory справочник клиентов.
// Репозиторий владеет авторитетными копиями: запись сохраняет копию,
// выборки возвращают копии, поэтому чтение снимка никогда не гонится
// с пополнением истории бронирований.
type Repository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Customer
	ordered []*domain.Customer
}

// NewRepository создает пустой справочник клиентов
func NewRepository() *Repository {
	return &Repository{
		byID: make(map[string]*domain.Customer),
	}
}

// Create сохраняет копию клиента в справочнике
func (r *Repository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; exists {
		return nil, ErrDuplicateCustomerID
	}

	stored := c.Clone()
	r.byID[stored.ID] = stored
	r.ordered = append(r.ordered, stored)
	return c, nil
}

// GetByID возвращает копию клиента по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return c.Clone(), nil
}

// List возвращает копии всех клиентов в порядке вставки
func (r *Repository) List(ctx context.Context) ([]*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Customer, 0, len(r.ordered))
	for _, c := range r.ordered {
		out = append(out, c.Clone())
	}
	return out, nil
}

// AppendBooking добавляет идентификатор бронирования в историю клиента
func (r *Repository) AppendBooking(ctx context.Context, customerID, bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[customerID]
	if !ok {
		return ErrCustomerNotFound
	}
	c.AppendBooking(bookingID)
	return nil
}
