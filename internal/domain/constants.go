package domain

// Business validation constants
const (
	MaxTitleLength        = 255
	MaxNotesLength        = 500
	MaxReasonLength       = 500
	MaxStaffNameLength    = 255
	MaxAssignedRoleLength = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, при которых резервирование не занимает календарь
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// OccupiesCalendar проверяет, занимает ли резервирование с этим статусом календарь
func (s BookingStatus) OccupiesCalendar() bool {
	for _, inactive := range InactiveStatuses {
		if s == inactive {
			return false
		}
	}
	return true
}
