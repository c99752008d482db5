package domain

import (
	"time"

	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// BookingType тип бронирования, к которому привязывается назначение персонала
type BookingType string

const (
	BookingTypeEvent   BookingType = "event_booking"
	BookingTypeService BookingType = "service_booking"
)

// IsValid returns true if the booking type is known
func (t BookingType) IsValid() bool {
	return t == BookingTypeEvent || t == BookingTypeService
}

// ReservationKind returns the calendar kind of the booking type
func (t BookingType) ReservationKind() ReservationKind {
	return ReservationKind(t)
}

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusReserved  BookingStatus = "reserved"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents an event booking or a service booking
type Booking struct {
	ID        int64
	Type      BookingType
	Title     string
	ServiceID *int64 // только для service_booking
	Date      time.Time
	TimeFrom  types.TimeString
	TimeTo    types.TimeString
	Status    BookingStatus
	Notes     *string
	CreatedBy int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies the calendar
func (b *Booking) IsActive() bool {
	return b.Status.OccupiesCalendar()
}

// CanBeRescheduled returns true if the booking date/time can be changed
func (b *Booking) CanBeRescheduled() bool {
	return b.Status != StatusCancelled && b.Status != StatusCompleted
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status != StatusCancelled && b.Status != StatusCompleted
}

// ReservationWindow returns the calendar occupancy of the booking
func (b *Booking) ReservationWindow() ReservationWindow {
	from, to := b.TimeFrom, b.TimeTo
	return ReservationWindow{
		ID:       b.ID,
		Kind:     b.Type.ReservationKind(),
		Date:     b.Date,
		TimeFrom: &from,
		TimeTo:   &to,
		Status:   b.Status,
	}
}
