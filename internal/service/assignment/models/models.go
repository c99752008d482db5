package models

import (
	"time"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// AssignRequest запрос на расчёт назначений для бронирования
type AssignRequest struct {
	ReservationID int64
	BookingType   domain.BookingType
	Date          time.Time
	TimeFrom      types.TimeString
	TimeTo        types.TimeString
}

// Result итог назначения
type Result struct {
	ReservationID int64           `json:"reservationId"`
	BookingType   string          `json:"bookingType"`
	Date          string          `json:"date"`
	Weekday       string          `json:"weekday"`
	Retracted     int64           `json:"retracted"`
	Assigned      []AssignedStaff `json:"assigned"`
}

// AssignedStaff назначенный сотрудник
type AssignedStaff struct {
	ID           int64  `json:"id,omitempty"`
	StaffID      int64  `json:"staffId"`
	Name         string `json:"name,omitempty"`
	AssignedRole string `json:"assignedRole"`
}

// StaffIDs возвращает ID назначенных сотрудников
func (r *Result) StaffIDs() []int64 {
	ids := make([]int64, 0, len(r.Assigned))
	for _, a := range r.Assigned {
		ids = append(ids, a.StaffID)
	}
	return ids
}

// FromDomainAssignedStaff конвертирует назначения из domain
func FromDomainAssignedStaff(items []domain.AssignedStaff) []AssignedStaff {
	result := make([]AssignedStaff, 0, len(items))
	for _, item := range items {
		result = append(result, AssignedStaff{
			ID:           item.ID,
			StaffID:      item.StaffID,
			AssignedRole: item.AssignedRole,
		})
	}
	return result
}
