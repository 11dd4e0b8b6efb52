package domain

// Customer клиент салона.
// История хранит только идентификаторы бронирований:
// владельцем самих бронирований остается леджер.
type Customer struct {
	ID      string
	Name    string
	history []string
}

// NewCustomer создает клиента с пустой историей бронирований
func NewCustomer(id, name string) *Customer {
	return &Customer{ID: id, Name: name}
}

// AppendBooking добавляет идентификатор бронирования в историю клиента
func (c *Customer) AppendBooking(bookingID string) {
	c.history = append(c.history, bookingID)
}

// BookingHistory возвращает копию истории бронирований клиента
func (c *Customer) BookingHistory() []string {
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// BookingCount возвращает количество бронирований в истории клиента
func (c *Customer) BookingCount() int {
	return len(c.history)
}

// Clone возвращает копию клиента вместе с историей бронирований
func (c *Customer) Clone() *Customer {
	clone := NewCustomer(c.ID, c.Name)
	clone.history = append([]string(nil), c.history...)
	return clone
}
