package catalog

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("catalog.repository: salon not found")

	// ErrStaffNotFound возвращается, когда мастер не найден в салоне
	ErrStaffNotFound = errors.New("catalog.repository: staff member not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в салоне
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrDuplicateSalonID возвращается при вставке салона с занятым идентификатором
	ErrDuplicateSalonID = errors.New("catalog.repository: salon with this id already exists")
)
