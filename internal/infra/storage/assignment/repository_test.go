package assignment

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/pkg/psqlbuilder"
)

func TestReservationFilter(t *testing.T) {
	where, err := reservationFilter(domain.BookingTypeService, 12)
	require.NoError(t, err)

	query, args, err := psqlbuilder.Delete("assigned_staff").Where(where).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "DELETE FROM assigned_staff WHERE")
	assert.Contains(t, query, "service_booking_id = $")
	assert.Contains(t, query, "booking_type = $")
	assert.ElementsMatch(t, []interface{}{"service_booking", int64(12)}, args)

	_, err = reservationFilter(domain.BookingType("appointment"), 1)
	assert.ErrorIs(t, err, ErrInvalidBookingType)
}

type fakeRow struct {
	bookingID *int64
	role      sql.NullString
}

func (r fakeRow) Scan(dest ...interface{}) error {
	*dest[0].(*int64) = 1
	*dest[1].(*int64) = 7
	*dest[2].(**int64) = r.bookingID
	*dest[3].(**int64) = nil
	*dest[4].(*string) = "event_booking"
	*dest[5].(*sql.NullString) = r.role
	*dest[6].(*sql.NullTime) = sql.NullTime{Time: time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC), Valid: true}
	return nil
}

func TestScanAssignment_NullRole(t *testing.T) {
	bookingID := int64(42)

	item, err := scanAssignment(fakeRow{bookingID: &bookingID})
	require.NoError(t, err)
	assert.Equal(t, int64(7), item.StaffID)
	assert.Equal(t, &bookingID, item.BookingID)
	assert.Nil(t, item.ServiceBookingID)
	assert.Equal(t, domain.BookingTypeEvent, item.BookingType)
	assert.Empty(t, item.AssignedRole)

	item, err = scanAssignment(fakeRow{bookingID: &bookingID, role: sql.NullString{String: "host", Valid: true}})
	require.NoError(t, err)
	assert.Equal(t, "host", item.AssignedRole)
}
