package domain

import "time"

// LedgerFilter фильтр выборки бронирований из леджера.
// Все поля опциональны и комбинируются через AND.
type LedgerFilter struct {
	SalonID    *string        // фильтр по салону
	StaffID    *string        // фильтр по мастеру
	CustomerID *string        // фильтр по клиенту
	Status     *BookingStatus // фильтр по статусу
	Date       *time.Time     // фильтр по календарному дню (время отбрасывается)

	// OnlyActive отбрасывает отклоненные и отмененные бронирования.
	// Используется сканом конфликтов; запросы истории оставляют false.
	OnlyActive bool
}

// Matches возвращает true, если бронирование проходит фильтр
func (f LedgerFilter) Matches(b *Booking) bool {
	if f.OnlyActive && !b.IsActive() {
		return false
	}
	if f.SalonID != nil && b.SalonID != *f.SalonID {
		return false
	}
	if f.StaffID != nil && b.StaffID != *f.StaffID {
		return false
	}
	if f.CustomerID != nil && b.CustomerID != *f.CustomerID {
		return false
	}
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.Date != nil && !sameDay(b.StartTime, *f.Date) {
		return false
	}
	return true
}

// sameDay сравнивает моменты, усеченные до календарного дня
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
