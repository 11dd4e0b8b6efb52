package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateID возвращается при вставке бронирования с занятым идентификатором
	ErrDuplicateID = errors.New("booking.repository: booking with this id already exists")
)
