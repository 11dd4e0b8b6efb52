package domain

import "errors"

// ErrWindowConflict возвращается при добавлении окна, пересекающегося с существующим
var ErrWindowConflict = errors.New("domain: window conflicts with an existing availability window")

// Availability реестр окон доступности мастера.
// Инвариант: никакие два окна в реестре не пересекаются (проверяется при вставке).
// Соседние окна не склеиваются автоматически.
type Availability struct {
	windows []TimeWindow
}

// AddWindow добавляет окно в реестр.
// Возвращает ErrWindowConflict, если окно пересекается с любым из существующих.
func (a *Availability) AddWindow(w TimeWindow) error {
	for _, existing := range a.windows {
		if existing.ConflictsWith(w) {
			return ErrWindowConflict
		}
	}
	a.windows = append(a.windows, w)
	return nil
}

// AnyWindowContaining возвращает true, если какое-то окно целиком содержит w.
// Единственный запрос, используемый при допуске бронирования.
func (a *Availability) AnyWindowContaining(w TimeWindow) bool {
	for _, existing := range a.windows {
		if existing.FullyContains(w) {
			return true
		}
	}
	return false
}

// Windows возвращает копию окон реестра.
// Вызывающий не может изменить внутреннее состояние реестра через результат.
func (a *Availability) Windows() []TimeWindow {
	out := make([]TimeWindow, len(a.windows))
	copy(out, a.windows)
	return out
}

// Len возвращает количество окон в реестре
func (a *Availability) Len() int {
	return len(a.windows)
}
