package create_booking

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("create_booking: salon not found")

	// ErrStaffNotFound возвращается, когда мастер не найден в салоне
	ErrStaffNotFound = errors.New("create_booking: staff member not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в салоне
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrIncompatibleCapability возвращается, когда услуги нет в наборе умений мастера
	ErrIncompatibleCapability = errors.New("create_booking: staff member cannot perform this service")

	// ErrOutsideAvailability возвращается, когда ни одно окно доступности мастера
	// не содержит целиком запрошенный интервал
	ErrOutsideAvailability = errors.New("create_booking: requested time is outside staff availability")

	// ErrSchedulingConflict возвращается при пересечении с активным бронированием мастера.
	// Сообщение содержит идентификатор конфликтующего бронирования,
	// чтобы вызывающий мог выбрать другой слот.
	ErrSchedulingConflict = errors.New("create_booking: time slot conflicts with an existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
