package domain

import (
	"time"

	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// AvailabilityStatus статус недельного окна сотрудника
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
	AvailabilityBlocked     AvailabilityStatus = "blocked"
)

// IsValid returns true if the status is known
func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case AvailabilityAvailable, AvailabilityUnavailable, AvailabilityBlocked:
		return true
	}
	return false
}

// Staff represents an employee who can be assigned to reservations
type Staff struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StaffAvailabilityWindow недельное окно доступности сотрудника
// Одно окно на пару (staff_id, day_of_week), интервал [StartTime, EndTime)
type StaffAvailabilityWindow struct {
	StaffID   int64
	DayOfWeek Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    AvailabilityStatus
}

// IsAvailable returns true if the window can be used by the matcher
func (w *StaffAvailabilityWindow) IsAvailable() bool {
	return w.Status == AvailabilityAvailable
}

// Contains returns true if [from, to) lies entirely inside the window
func (w *StaffAvailabilityWindow) Contains(from, to types.TimeString) bool {
	return w.StartTime.Minutes() <= from.Minutes() && w.EndTime.Minutes() >= to.Minutes()
}

// IsWellFormed returns true if an available window has start < end
// Для заблокированных и недоступных окон время не учитывается
func (w *StaffAvailabilityWindow) IsWellFormed() bool {
	if !w.IsAvailable() {
		return true
	}
	if w.StartTime.Validate() != nil || w.EndTime.Validate() != nil {
		return false
	}
	return w.StartTime.IsBefore(w.EndTime)
}
