package keylock

import (
	"context"
	"sync"
)

// Manager сериализует выполнение операций по строковому ключу.
// Используется для допуска бронирований: скан конфликтов и вставка
// для одного мастера должны выполняться атомарно относительно друг друга,
// при этом операции по разным мастерам не блокируют друг друга.
type Manager struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// NewManager создает новый менеджер блокировок по ключу
func NewManager() *Manager {
	return &Manager{
		locks: make(map[string]*entry),
	}
}

// Do выполняет fn под блокировкой ключа key.
// Операции с одинаковым ключом выполняются строго последовательно.
// Если контекст отменен до входа в критическую секцию, fn не вызывается.
func (m *Manager) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	e := m.acquire(key)
	e.mu.Lock()
	defer func() {
		e.mu.Unlock()
		m.release(key)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(ctx)
}

func (m *Manager) acquire(key string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.locks[key]
	if !ok {
		e = &entry{}
		m.locks[key] = e
	}
	e.refs++
	return e
}

func (m *Manager) release(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.locks[key]
	if !ok {
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(m.locks, key)
	}
}
