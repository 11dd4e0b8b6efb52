package domain

import "time"

// Staff мастер салона - ресурс, чье время бронируется.
// Единолично владеет своим реестром доступности и набором умений;
// оба растут только через явные операции добавления.
type Staff struct {
	ID           string
	Name         string
	Specialties  []string
	capabilities map[string]struct{} // названия услуг, которые мастер умеет выполнять
	availability Availability
}

// NewStaff создает мастера с пустым реестром доступности и набором умений
func NewStaff(id, name string, specialties []string) *Staff {
	return &Staff{
		ID:           id,
		Name:         name,
		Specialties:  append([]string(nil), specialties...),
		capabilities: make(map[string]struct{}),
	}
}

// GrantCapability добавляет услугу в набор умений мастера.
// Повторное добавление - no-op.
func (s *Staff) GrantCapability(serviceName string) {
	s.capabilities[serviceName] = struct{}{}
}

// CanPerform возвращает true, если мастер умеет выполнять услугу
func (s *Staff) CanPerform(serviceName string) bool {
	_, ok := s.capabilities[serviceName]
	return ok
}

// Capabilities возвращает копию набора умений мастера
func (s *Staff) Capabilities() []string {
	out := make([]string, 0, len(s.capabilities))
	for name := range s.capabilities {
		out = append(out, name)
	}
	return out
}

// AddWindow добавляет окно доступности мастера.
// Возвращает ErrWindowConflict при пересечении с существующим окном.
func (s *Staff) AddWindow(w TimeWindow) error {
	return s.availability.AddWindow(w)
}

// IsAvailableFor возвращает true, если какое-то окно доступности мастера
// целиком содержит интервал [start, start+duration)
func (s *Staff) IsAvailableFor(start time.Time, durationMinutes int) bool {
	w, err := NewTimeWindow(start, start.Add(time.Duration(durationMinutes)*time.Minute))
	if err != nil {
		return false
	}
	return s.availability.AnyWindowContaining(w)
}

// Windows возвращает копию окон доступности мастера
func (s *Staff) Windows() []TimeWindow {
	return s.availability.Windows()
}

// Clone возвращает глубокую копию мастера.
// Изменения копии не затрагивают оригинал и наоборот.
func (s *Staff) Clone() *Staff {
	clone := NewStaff(s.ID, s.Name, s.Specialties)
	for name := range s.capabilities {
		clone.capabilities[name] = struct{}{}
	}
	clone.availability.windows = s.availability.Windows()
	return clone
}
