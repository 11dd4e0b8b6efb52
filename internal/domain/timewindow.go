package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeRange возвращается при попытке создать окно с start >= end
var ErrInvalidTimeRange = errors.New("domain: start time must be before end time")

// TimeWindow временное окно [start, end). Неизменяемо после создания.
//
// Проверки пересечения используют строгие неравенства (окна, соприкасающиеся
// границами, не конфликтуют), а проверки вхождения - нестрогие (бронирование
// может заканчиваться ровно на границе окна). Эта асимметрия намеренная.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

// NewTimeWindow создает окно [start, end). Требует строго start < end.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, fmt.Errorf("%w: start=%s end=%s",
			ErrInvalidTimeRange, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeWindow{start: start, end: end}, nil
}

// Start возвращает начало окна
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End возвращает конец окна
func (w TimeWindow) End() time.Time {
	return w.end
}

// ConflictsWith возвращает true, если окна пересекаются.
// Пересечение открытое: A.start < B.end && B.start < A.end.
func (w TimeWindow) ConflictsWith(other TimeWindow) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// Contains возвращает true, если момент попадает в окно.
// Обе границы включительно.
func (w TimeWindow) Contains(instant time.Time) bool {
	return !instant.Before(w.start) && !instant.After(w.end)
}

// FullyContains возвращает true, если окно other целиком лежит внутри w.
// Обе границы включительно.
func (w TimeWindow) FullyContains(other TimeWindow) bool {
	return w.Contains(other.start) && w.Contains(other.end)
}

// String возвращает строковое представление окна
func (w TimeWindow) String() string {
	return fmt.Sprintf("%s - %s", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
