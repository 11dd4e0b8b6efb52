package ids

import (
	"fmt"

	"github.com/google/uuid"
)

// Префиксы идентификаторов сущностей
const (
	PrefixBooking  = "APT"
	PrefixSalon    = "SALON"
	PrefixStaff    = "STF"
	PrefixCustomer = "CUS"
	PrefixService  = "SRV"
)

// Allocator генератор уникальных идентификаторов.
// Единственный контракт - глобальная уникальность, формат непрозрачен для вызывающих.
type Allocator struct{}

// NewAllocator создает новый генератор идентификаторов
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Generate возвращает уникальный идентификатор с указанным префиксом
func (a *Allocator) Generate(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
