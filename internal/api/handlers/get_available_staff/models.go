package get_available_staff

import (
	"time"

	availableStaff "github.com/m04kA/SalonSchedulingService/internal/usecase/get_available_staff"
)

// StaffView информация о свободном мастере в ответе
type StaffView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
}

// AvailableStaffResponse ответ со списком свободных мастеров
type AvailableStaffResponse struct {
	SalonID         string      `json:"salonId"`
	ServiceName     string      `json:"serviceName"`
	DurationMinutes int         `json:"durationMinutes"`
	At              string      `json:"at"`
	Staff           []StaffView `json:"staff"`
}

// FromUseCaseResponse преобразует ответ usecase в HTTP-модель
func FromUseCaseResponse(resp *availableStaff.Response) *AvailableStaffResponse {
	out := &AvailableStaffResponse{
		SalonID:         resp.SalonID,
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		At:              resp.At.Format(time.RFC3339),
		Staff:           make([]StaffView, 0, len(resp.Staff)),
	}
	for _, s := range resp.Staff {
		out.Staff = append(out.Staff, StaffView{
			ID:          s.ID,
			Name:        s.Name,
			Specialties: s.Specialties,
		})
	}
	return out
}
