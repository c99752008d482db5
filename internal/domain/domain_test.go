package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

func TestNewAssignedStaff(t *testing.T) {
	t.Run("event booking", func(t *testing.T) {
		a, err := NewAssignedStaff(7, BookingTypeEvent, 42, "waiter")
		require.NoError(t, err)
		require.NotNil(t, a.BookingID)
		assert.Equal(t, int64(42), *a.BookingID)
		assert.Nil(t, a.ServiceBookingID)
		assert.Equal(t, "waiter", a.AssignedRole)
		assert.Equal(t, int64(42), a.ReservationID())
	})

	t.Run("service booking", func(t *testing.T) {
		a, err := NewAssignedStaff(7, BookingTypeService, 5, "chef")
		require.NoError(t, err)
		assert.Nil(t, a.BookingID)
		require.NotNil(t, a.ServiceBookingID)
		assert.Equal(t, int64(5), *a.ServiceBookingID)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := NewAssignedStaff(7, BookingType("appointment"), 5, "chef")
		assert.ErrorIs(t, err, ErrInvalidBookingType)
	})
}

func TestStaffAvailabilityWindow(t *testing.T) {
	w := StaffAvailabilityWindow{StaffID: 1, DayOfWeek: Monday, StartTime: "09:00", EndTime: "12:00", Status: AvailabilityAvailable}

	assert.True(t, w.Contains("10:00", "11:00"))
	assert.True(t, w.Contains("09:00", "12:00"))
	assert.False(t, w.Contains("11:30", "13:00"))
	assert.True(t, w.IsWellFormed())

	w.EndTime = "09:00"
	assert.False(t, w.IsWellFormed())

	w.Status = AvailabilityBlocked
	assert.True(t, w.IsWellFormed())
	assert.False(t, w.IsAvailable())
}

func TestReservationWindow(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	blocked := BlockedDate{ID: 3, Date: date}
	rw := blocked.ReservationWindow()
	assert.True(t, rw.IsWholeDay())
	assert.True(t, rw.IsActive())
	assert.Equal(t, ReservationRef{Kind: KindBlockedDate, ID: 3}, rw.Ref())

	booking := Booking{ID: 9, Type: BookingTypeService, Date: date, TimeFrom: "10:00", TimeTo: "11:00", Status: StatusCancelled}
	bw := booking.ReservationWindow()
	assert.False(t, bw.IsWholeDay())
	assert.False(t, bw.IsActive())
	assert.Equal(t, KindServiceBooking, bw.Kind)
	assert.Equal(t, types.TimeString("10:00"), *bw.TimeFrom)
	assert.False(t, booking.CanBeRescheduled())

	assert.True(t, SameDate(date, date.Add(23*time.Hour)))
	assert.False(t, SameDate(date, date.Add(24*time.Hour)))
}
