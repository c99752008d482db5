package domain

import (
	"time"

	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// ReservationKind вид записи, занимающей календарь
type ReservationKind string

const (
	KindEventBooking   ReservationKind = "event_booking"
	KindServiceBooking ReservationKind = "service_booking"
	KindAppointment    ReservationKind = "appointment"
	KindBlockedDate    ReservationKind = "blocked_date"
)

// ReservationKinds все виды резервирований
var ReservationKinds = []ReservationKind{KindEventBooking, KindServiceBooking, KindAppointment, KindBlockedDate}

// IsValid returns true if the kind is known
func (k ReservationKind) IsValid() bool {
	for _, kind := range ReservationKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ReservationRef ссылка на конкретное резервирование
type ReservationRef struct {
	Kind ReservationKind
	ID   int64
}

// ReservationWindow занятость календаря: бронирование, запись на услугу, приём или блокировка
// TimeFrom и TimeTo равны nil, если занят весь день
type ReservationWindow struct {
	ID       int64
	Kind     ReservationKind
	Date     time.Time
	TimeFrom *types.TimeString
	TimeTo   *types.TimeString
	Status   BookingStatus
}

// Ref returns the reference of the reservation
func (r *ReservationWindow) Ref() ReservationRef {
	return ReservationRef{Kind: r.Kind, ID: r.ID}
}

// IsWholeDay returns true if the reservation occupies the entire day
func (r *ReservationWindow) IsWholeDay() bool {
	return r.TimeFrom == nil || r.TimeTo == nil
}

// IsActive returns true if the reservation occupies the calendar
func (r *ReservationWindow) IsActive() bool {
	return r.Status.OccupiesCalendar()
}

// SameDate returns true if both dates fall on the same calendar day
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BlockedDate блокировка календаря на весь день или на интервал
type BlockedDate struct {
	ID        int64
	Date      time.Time
	StartTime *types.TimeString // nil = весь день
	EndTime   *types.TimeString
	Reason    *string
	CreatedBy int64
	CreatedAt time.Time
}

// IsWholeDay returns true if the whole day is blocked
func (b *BlockedDate) IsWholeDay() bool {
	return b.StartTime == nil || b.EndTime == nil
}

// ReservationWindow returns the calendar occupancy of the blocked date
func (b *BlockedDate) ReservationWindow() ReservationWindow {
	return ReservationWindow{
		ID:       b.ID,
		Kind:     KindBlockedDate,
		Date:     b.Date,
		TimeFrom: b.StartTime,
		TimeTo:   b.EndTime,
		Status:   StatusReserved,
	}
}
