package domain

// Форматы даты и времени
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// Бизнес-ограничения
const (
	MaxRejectionReasonLength = 500
	MaxSpecialties           = 10
)
