package domain

import (
	"errors"
	"time"
)

// ErrInvalidBookingType тип бронирования не поддерживает назначение персонала
var ErrInvalidBookingType = errors.New("domain: invalid booking type")

// AssignedStaff назначение сотрудника на бронирование
// Ровно одна из ссылок BookingID / ServiceBookingID заполнена в соответствии с BookingType
type AssignedStaff struct {
	ID               int64
	StaffID          int64
	BookingID        *int64
	ServiceBookingID *int64
	BookingType      BookingType
	AssignedRole     string // роль на момент назначения
	CreatedAt        time.Time
}

// NewAssignedStaff создает назначение, заполняя ссылку по типу бронирования
func NewAssignedStaff(staffID int64, bookingType BookingType, reservationID int64, role string) (AssignedStaff, error) {
	id := reservationID
	assigned := AssignedStaff{
		StaffID:      staffID,
		BookingType:  bookingType,
		AssignedRole: role,
	}

	switch bookingType {
	case BookingTypeEvent:
		assigned.BookingID = &id
	case BookingTypeService:
		assigned.ServiceBookingID = &id
	default:
		return AssignedStaff{}, ErrInvalidBookingType
	}

	return assigned, nil
}

// ReservationID returns the id of the referenced booking
func (a *AssignedStaff) ReservationID() int64 {
	if a.BookingID != nil {
		return *a.BookingID
	}
	if a.ServiceBookingID != nil {
		return *a.ServiceBookingID
	}
	return 0
}
