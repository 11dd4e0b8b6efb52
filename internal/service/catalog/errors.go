package catalog

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("catalog: salon not found")

	// ErrStaffNotFound возвращается, когда мастер не найден в салоне
	ErrStaffNotFound = errors.New("catalog: staff member not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в салоне
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("catalog: customer not found")

	// ErrDuplicateService возвращается при добавлении услуги с занятым названием
	ErrDuplicateService = errors.New("catalog: service with this name already exists in the salon")

	// ErrWindowConflict возвращается при добавлении пересекающегося окна доступности
	ErrWindowConflict = errors.New("catalog: availability window conflicts with an existing one")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
