package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ServiceKind вид услуги. Закрытый набор вариантов:
// новые виды добавляют только описательное поведение,
// правила проверки конфликтов от вида не зависят.
type ServiceKind string

const (
	KindHaircut  ServiceKind = "haircut"
	KindBeard    ServiceKind = "beard"
	KindColoring ServiceKind = "coloring"
)

var (
	// ErrEmptyServiceName возвращается при пустом названии услуги
	ErrEmptyServiceName = errors.New("domain: service name cannot be empty")

	// ErrInvalidDuration возвращается при неположительной длительности услуги
	ErrInvalidDuration = errors.New("domain: service duration must be positive")

	// ErrNegativePrice возвращается при отрицательной цене услуги
	ErrNegativePrice = errors.New("domain: service price cannot be negative")

	// ErrUnknownServiceKind возвращается при неизвестном виде услуги
	ErrUnknownServiceKind = errors.New("domain: unknown service kind")
)

// Service услуга салона.
// Идентичность услуги - её название: внутри одного салона
// не может быть двух услуг с одинаковым названием.
type Service struct {
	Name            string
	Kind            ServiceKind
	DurationMinutes int
	Price           float64

	// Описательная нагрузка варианта
	HaircutType          string // haircut: тип стрижки
	IncludesTrim         bool   // beard: с подравниванием
	ColorType            string // coloring: тип окрашивания
	RequiresConsultation bool   // coloring: нужна ли консультация
}

// Validate проверяет корректность услуги
func (s *Service) Validate() error {
	if s.Name == "" {
		return ErrEmptyServiceName
	}
	if s.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if s.Price < 0 {
		return ErrNegativePrice
	}
	switch s.Kind {
	case KindHaircut, KindBeard, KindColoring:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownServiceKind, s.Kind)
	}
}

// Description возвращает описание услуги в зависимости от её вида
func (s *Service) Description() string {
	switch s.Kind {
	case KindHaircut:
		return fmt.Sprintf("Haircut Service: %s (%s) - Perfect styling for your hair. Duration: %d minutes, Price: %.2f",
			s.Name, s.HaircutType, s.DurationMinutes, s.Price)
	case KindBeard:
		trimInfo := "styling only"
		if s.IncludesTrim {
			trimInfo = "with trim"
		}
		return fmt.Sprintf("Beard Service: %s (%s) - Professional beard grooming. Duration: %d minutes, Price: %.2f",
			s.Name, trimInfo, s.DurationMinutes, s.Price)
	case KindColoring:
		consultInfo := ""
		if s.RequiresConsultation {
			consultInfo = " (consultation required)"
		}
		return fmt.Sprintf("Coloring Service: %s - %s%s. Duration: %d minutes, Price: %.2f",
			s.Name, s.ColorType, consultInfo, s.DurationMinutes, s.Price)
	default:
		return fmt.Sprintf("%s - %d min - %.2f", s.Name, s.DurationMinutes, s.Price)
	}
}

// IncludesWash возвращает true для стрижек от 30 минут: в них входит мытье головы
func (s *Service) IncludesWash() bool {
	return s.Kind == KindHaircut && s.DurationMinutes >= 30
}

// RequiresSpecialTools возвращает true для услуг бороды с подравниванием
func (s *Service) RequiresSpecialTools() bool {
	return s.Kind == KindBeard && s.IncludesTrim
}

// EstimatedChemicalCost возвращает оценку стоимости расходников для окрашивания
func (s *Service) EstimatedChemicalCost() float64 {
	if s.Kind != KindColoring {
		return 0
	}
	if strings.Contains(strings.ToLower(s.ColorType), "highlights") {
		return 50
	}
	return 30
}
