package get_available_staff

import (
	"github.com/m04kA/SMC-StaffingService/internal/domain"
	getAvailableStaff "github.com/m04kA/SMC-StaffingService/internal/usecase/get_available_staff"
)

// AvailableStaffResponse HTTP response model
type AvailableStaffResponse struct {
	Date     string     `json:"date"`
	Weekday  string     `json:"weekday"`
	TimeFrom string     `json:"timeFrom"`
	TimeTo   string     `json:"timeTo"`
	Blocked  bool       `json:"blocked"`
	Staff    []StaffDTO `json:"staff"`
}

// StaffDTO свободный сотрудник
type StaffDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableStaff.Response) *AvailableStaffResponse {
	staff := make([]StaffDTO, 0, len(resp.Staff))
	for _, s := range resp.Staff {
		staff = append(staff, StaffDTO{ID: s.ID, Name: s.Name, Role: s.Role})
	}

	return &AvailableStaffResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Weekday:  resp.Weekday,
		TimeFrom: resp.TimeFrom.String(),
		TimeTo:   resp.TimeTo.String(),
		Blocked:  resp.Blocked,
		Staff:    staff,
	}
}
