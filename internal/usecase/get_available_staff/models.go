package get_available_staff

import "time"

// Request модель запроса свободных мастеров
type Request struct {
	SalonID     string    // идентификатор салона
	ServiceName string    // название услуги
	At          time.Time // желаемый момент начала
}

// StaffInfo информация о свободном мастере
type StaffInfo struct {
	ID          string
	Name        string
	Specialties []string
}

// Response модель ответа со свободными мастерами
type Response struct {
	SalonID         string
	ServiceName     string
	DurationMinutes int
	At              time.Time
	Staff           []StaffInfo
}
