package conflicts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/pkg/ptr"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

var (
	monday  = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tuesday = monday.AddDate(0, 0, 1)
)

func timed(kind domain.ReservationKind, id int64, date time.Time, from, to types.TimeString) domain.ReservationWindow {
	return domain.ReservationWindow{
		ID:       id,
		Kind:     kind,
		Date:     date,
		TimeFrom: ptr.Ptr(from),
		TimeTo:   ptr.Ptr(to),
		Status:   domain.StatusConfirmed,
	}
}

func wholeDay(id int64, date time.Time) domain.ReservationWindow {
	return domain.ReservationWindow{ID: id, Kind: domain.KindBlockedDate, Date: date, Status: domain.StatusReserved}
}

func candidate(date time.Time, from, to types.TimeString) Candidate {
	return Candidate{Date: date, From: ptr.Ptr(from), To: ptr.Ptr(to)}
}

func TestHasConflict_InclusiveBoundary(t *testing.T) {
	checker := NewChecker(Inclusive)
	existing := []domain.ReservationWindow{timed(domain.KindEventBooking, 1, monday, "09:00", "10:00")}

	assert.True(t, checker.HasConflict(candidate(monday, "10:00", "11:00"), existing))
	assert.True(t, checker.HasConflict(candidate(monday, "08:00", "09:00"), existing))
	assert.True(t, checker.HasConflict(candidate(monday, "09:30", "09:45"), existing))
	assert.False(t, checker.HasConflict(candidate(monday, "10:01", "11:00"), existing))
}

func TestHasConflict_ExclusiveBoundary(t *testing.T) {
	checker := NewChecker(Exclusive)
	existing := []domain.ReservationWindow{timed(domain.KindEventBooking, 1, monday, "09:00", "10:00")}

	assert.False(t, checker.HasConflict(candidate(monday, "10:00", "11:00"), existing))
	assert.True(t, checker.HasConflict(candidate(monday, "09:59", "11:00"), existing))
}

func TestHasConflict_WholeDayBlockAbsorbsAllTimes(t *testing.T) {
	checker := NewChecker(Inclusive)
	existing := []domain.ReservationWindow{wholeDay(1, monday)}

	for _, c := range []Candidate{
		candidate(monday, "00:00", "00:30"),
		candidate(monday, "12:00", "13:00"),
		candidate(monday, "23:00", "24:00"),
	} {
		assert.True(t, checker.HasConflict(c, existing))
	}
	assert.True(t, NewChecker(Exclusive).HasConflict(candidate(monday, "23:00", "24:00"), existing))
	assert.False(t, checker.HasConflict(candidate(tuesday, "12:00", "13:00"), existing))
}

func TestHasConflict_WholeDayCandidate(t *testing.T) {
	checker := NewChecker(Inclusive)

	existing := []domain.ReservationWindow{timed(domain.KindAppointment, 1, monday, "15:00", "15:30")}
	assert.True(t, checker.HasConflict(Candidate{Date: monday}, existing))
	assert.False(t, checker.HasConflict(Candidate{Date: tuesday}, existing))
}

func TestHasConflict_IgnoresCancelledAndExcluded(t *testing.T) {
	checker := NewChecker(Inclusive)

	cancelled := timed(domain.KindEventBooking, 1, monday, "10:00", "12:00")
	cancelled.Status = domain.StatusCancelled
	self := timed(domain.KindServiceBooking, 2, monday, "10:00", "12:00")

	c := candidate(monday, "11:00", "13:00")
	c.Exclude = &domain.ReservationRef{Kind: domain.KindServiceBooking, ID: 2}
	assert.False(t, checker.HasConflict(c, []domain.ReservationWindow{cancelled, self}))

	// id совпадает, но вид другой
	c.Exclude = &domain.ReservationRef{Kind: domain.KindEventBooking, ID: 2}
	assert.True(t, checker.HasConflict(c, []domain.ReservationWindow{self}))
}

func TestFindConflicts(t *testing.T) {
	checker := NewChecker(Inclusive)
	existing := []domain.ReservationWindow{
		timed(domain.KindEventBooking, 1, monday, "08:00", "09:00"),
		timed(domain.KindEventBooking, 2, monday, "12:00", "13:00"),
		wholeDay(3, tuesday),
		timed(domain.KindAppointment, 4, monday, "13:00", "14:00"),
	}

	got := checker.FindConflicts(candidate(monday, "11:00", "13:00"), existing)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)

	none := checker.FindConflicts(candidate(monday, "10:00", "10:30"), existing)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
