package update_booking_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StaffingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"
	"github.com/m04kA/SMC-StaffingService/internal/service/conflicts"
	"github.com/m04kA/SMC-StaffingService/pkg/logger"
	"github.com/m04kA/SMC-StaffingService/pkg/ptr"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

var (
	today   = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	tuesday = time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByID(ctx context.Context, bookingType domain.BookingType, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, bookingType, id)
	booking, _ := args.Get(0).(*domain.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingRepo) UpdateSchedule(ctx context.Context, bookingType domain.BookingType, id int64, date time.Time, from, to types.TimeString) error {
	args := m.Called(ctx, bookingType, id, date, from, to)
	return args.Error(0)
}

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) GetByDate(ctx context.Context, date time.Time, kinds []domain.ReservationKind) ([]domain.ReservationWindow, error) {
	args := m.Called(ctx, date, kinds)
	windows, _ := args.Get(0).([]domain.ReservationWindow)
	return windows, args.Error(1)
}

type mockAssigner struct{ mock.Mock }

func (m *mockAssigner) Reassign(ctx context.Context, req *models.AssignRequest) (*models.Result, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*models.Result)
	return result, args.Error(1)
}

type passThroughTx struct{}

func (passThroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fixture struct {
	bookings     *mockBookingRepo
	reservations *mockReservationRepo
	assigner     *mockAssigner
	uc           *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookings:     &mockBookingRepo{},
		reservations: &mockReservationRepo{},
		assigner:     &mockAssigner{},
	}
	kinds := []domain.ReservationKind{domain.KindServiceBooking, domain.KindBlockedDate}
	f.uc = NewUseCase(f.bookings, f.reservations, conflicts.NewChecker(conflicts.Inclusive), f.assigner,
		passThroughTx{}, kinds, nil, logger.NewNop())
	f.uc.timeProvider = fixedTime{now: today}
	return f
}

func serviceBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:       20,
		Type:     domain.BookingTypeService,
		Title:    "Haircut",
		Date:     time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		TimeFrom: "10:00",
		TimeTo:   "11:00",
		Status:   status,
	}
}

func rescheduleRequest(from, to types.TimeString) *Request {
	return &Request{
		UserID:    1,
		Type:      domain.BookingTypeService,
		BookingID: 20,
		Date:      tuesday,
		TimeFrom:  from,
		TimeTo:    to,
	}
}

func TestExecute_ReschedulesAndReassigns(t *testing.T) {
	f := newFixture()

	f.bookings.On("GetByID", mock.Anything, domain.BookingTypeService, int64(20)).Return(serviceBooking(domain.StatusConfirmed), nil)
	// окно самого бронирования не конфликтует с его новым временем
	f.reservations.On("GetByDate", mock.Anything, tuesday, mock.Anything).Return([]domain.ReservationWindow{{
		ID: 20, Kind: domain.KindServiceBooking, Date: tuesday,
		TimeFrom: ptr.Ptr(types.TimeString("12:00")), TimeTo: ptr.Ptr(types.TimeString("13:00")),
		Status: domain.StatusConfirmed,
	}}, nil)
	f.bookings.On("UpdateSchedule", mock.Anything, domain.BookingTypeService, int64(20), tuesday, types.TimeString("12:30"), types.TimeString("13:30")).Return(nil)
	f.assigner.On("Reassign", mock.Anything, &models.AssignRequest{
		ReservationID: 20,
		BookingType:   domain.BookingTypeService,
		Date:          tuesday,
		TimeFrom:      "12:30",
		TimeTo:        "13:30",
	}).Return(&models.Result{Retracted: 2, Assigned: []models.AssignedStaff{{StaffID: 3}}}, nil)

	resp, err := f.uc.Execute(context.Background(), rescheduleRequest("12:30", "13:30"))

	require.NoError(t, err)
	assert.Equal(t, tuesday, resp.Date)
	assert.Equal(t, types.TimeString("12:30"), resp.TimeFrom)
	assert.Equal(t, AssignmentAssigned, resp.AssignmentStatus)
	assert.Equal(t, int64(2), resp.RetractedCount)
	f.bookings.AssertExpectations(t)
	f.assigner.AssertExpectations(t)
}

func TestExecute_ConflictWithOtherReservation(t *testing.T) {
	f := newFixture()

	f.bookings.On("GetByID", mock.Anything, domain.BookingTypeService, int64(20)).Return(serviceBooking(domain.StatusPending), nil)
	f.reservations.On("GetByDate", mock.Anything, tuesday, mock.Anything).Return([]domain.ReservationWindow{{
		ID: 21, Kind: domain.KindServiceBooking, Date: tuesday,
		TimeFrom: ptr.Ptr(types.TimeString("13:30")), TimeTo: ptr.Ptr(types.TimeString("14:00")),
		Status: domain.StatusConfirmed,
	}}, nil)

	_, err := f.uc.Execute(context.Background(), rescheduleRequest("12:30", "13:30"))

	assert.ErrorIs(t, err, ErrSlotConflict)
	f.bookings.AssertNotCalled(t, "UpdateSchedule", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.assigner.AssertNotCalled(t, "Reassign", mock.Anything, mock.Anything)
}

func TestExecute_CannotRescheduleCancelled(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, domain.BookingTypeService, int64(20)).Return(serviceBooking(domain.StatusCancelled), nil)

	_, err := f.uc.Execute(context.Background(), rescheduleRequest("12:30", "13:30"))

	assert.ErrorIs(t, err, ErrCannotReschedule)
}

func TestExecute_BookingNotFound(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, domain.BookingTypeService, int64(20)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := f.uc.Execute(context.Background(), rescheduleRequest("12:30", "13:30"))

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_ReassignFailureKeepsReschedule(t *testing.T) {
	f := newFixture()

	f.bookings.On("GetByID", mock.Anything, domain.BookingTypeService, int64(20)).Return(serviceBooking(domain.StatusConfirmed), nil)
	f.reservations.On("GetByDate", mock.Anything, tuesday, mock.Anything).Return([]domain.ReservationWindow{}, nil)
	f.bookings.On("UpdateSchedule", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.assigner.On("Reassign", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	resp, err := f.uc.Execute(context.Background(), rescheduleRequest("12:30", "13:30"))

	require.NoError(t, err)
	assert.Equal(t, AssignmentFailed, resp.AssignmentStatus)
}

func TestExecute_MalformedWindow(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), rescheduleRequest("13:30", "12:30"))

	assert.ErrorIs(t, err, ErrMalformedWindow)
	f.bookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}
