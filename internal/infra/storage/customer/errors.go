package customer

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer.repository: customer not found")

	// ErrDuplicateCustomerID возвращается при вставке клиента с занятым идентификатором
	ErrDuplicateCustomerID = errors.New("customer.repository: customer with this id already exists")
)
