package assignment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	staffRepo "github.com/m04kA/SMC-StaffingService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-StaffingService/internal/integrations/notificationservice"
	"github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"
	"github.com/m04kA/SMC-StaffingService/pkg/logger"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// 2024-01-01 - понедельник
var monday = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type mockAvailabilityRepo struct{ mock.Mock }

func (m *mockAvailabilityRepo) GetAvailableByWeekday(ctx context.Context, day domain.Weekday) ([]domain.StaffAvailabilityWindow, error) {
	args := m.Called(ctx, day)
	windows, _ := args.Get(0).([]domain.StaffAvailabilityWindow)
	return windows, args.Error(1)
}

type mockStaffRepo struct{ mock.Mock }

func (m *mockStaffRepo) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	args := m.Called(ctx, id)
	staff, _ := args.Get(0).(*domain.Staff)
	return staff, args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) NotifyStaffAssigned(ctx context.Context, n *notificationservice.StaffAssignedNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) ObserveAssignment(bookingType string, assigned int) {
	m.Called(bookingType, assigned)
}

// memoryAssignmentRepo хранит назначения в памяти, чтобы проверять итоговое состояние
type memoryAssignmentRepo struct {
	nextID  int64
	rows    []domain.AssignedStaff
	creates int
}

func (r *memoryAssignmentRepo) CreateBatch(_ context.Context, items []domain.AssignedStaff) ([]domain.AssignedStaff, error) {
	r.creates++
	created := make([]domain.AssignedStaff, 0, len(items))
	for _, item := range items {
		r.nextID++
		item.ID = r.nextID
		r.rows = append(r.rows, item)
		created = append(created, item)
	}
	return created, nil
}

func (r *memoryAssignmentRepo) DeleteByReservation(_ context.Context, bookingType domain.BookingType, id int64) (int64, error) {
	kept := r.rows[:0]
	var deleted int64
	for _, row := range r.rows {
		if row.BookingType == bookingType && row.ReservationID() == id {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return deleted, nil
}

func (r *memoryAssignmentRepo) GetByReservation(_ context.Context, bookingType domain.BookingType, id int64) ([]domain.AssignedStaff, error) {
	result := make([]domain.AssignedStaff, 0)
	for _, row := range r.rows {
		if row.BookingType == bookingType && row.ReservationID() == id {
			result = append(result, row)
		}
	}
	return result, nil
}

type passThroughTx struct{}

func (passThroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	availability *mockAvailabilityRepo
	staff        *mockStaffRepo
	assignments  *memoryAssignmentRepo
	notifier     *mockNotifier
	metrics      *mockMetrics
	service      *Service
}

func newFixture() *fixture {
	f := &fixture{
		availability: &mockAvailabilityRepo{},
		staff:        &mockStaffRepo{},
		assignments:  &memoryAssignmentRepo{},
		notifier:     &mockNotifier{},
		metrics:      &mockMetrics{},
	}
	f.service = NewService(f.availability, f.staff, f.assignments, f.notifier, passThroughTx{}, f.metrics, logger.NewNop())
	return f
}

func availableWindow(staffID int64, day domain.Weekday, start, end types.TimeString) domain.StaffAvailabilityWindow {
	return domain.StaffAvailabilityWindow{StaffID: staffID, DayOfWeek: day, StartTime: start, EndTime: end, Status: domain.AvailabilityAvailable}
}

func eventRequest(id int64, from, to types.TimeString) *models.AssignRequest {
	return &models.AssignRequest{
		ReservationID: id,
		BookingType:   domain.BookingTypeEvent,
		Date:          monday,
		TimeFrom:      from,
		TimeTo:        to,
	}
}

func recipientsAre(ids ...int64) interface{} {
	return mock.MatchedBy(func(n *notificationservice.StaffAssignedNotification) bool {
		if len(n.Recipients) != len(ids) {
			return false
		}
		for i, r := range n.Recipients {
			if r.StaffID != ids[i] {
				return false
			}
		}
		return true
	})
}

func TestAssign_ExampleScenario(t *testing.T) {
	f := newFixture()
	anna := &domain.Staff{ID: 1, Name: "Anna", Email: "anna@example.com", Role: "coordinator"}

	f.availability.On("GetAvailableByWeekday", mock.Anything, domain.Monday).
		Return([]domain.StaffAvailabilityWindow{availableWindow(1, domain.Monday, "07:00", "20:00")}, nil)
	f.staff.On("GetByID", mock.Anything, int64(1)).Return(anna, nil)
	f.notifier.On("NotifyStaffAssigned", mock.Anything, recipientsAre(1)).Return(nil).Twice()
	f.metrics.On("ObserveAssignment", "event_booking", 1).Return()

	first, err := f.service.Assign(context.Background(), eventRequest(10, "14:00", "16:00"))
	require.NoError(t, err)
	assert.Equal(t, "Monday", first.Weekday)
	assert.Equal(t, []int64{1}, first.StaffIDs())
	assert.Equal(t, "coordinator", first.Assigned[0].AssignedRole)

	// доступность не расходуется предыдущими назначениями
	second, err := f.service.Assign(context.Background(), eventRequest(11, "15:00", "17:00"))
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, second.StaffIDs())

	f.notifier.AssertNumberOfCalls(t, "NotifyStaffAssigned", 2)
	f.notifier.AssertExpectations(t)
	f.metrics.AssertExpectations(t)
}

func TestAssign_NoEligibleStaffAssignsNobody(t *testing.T) {
	f := newFixture()

	f.availability.On("GetAvailableByWeekday", mock.Anything, domain.Monday).
		Return([]domain.StaffAvailabilityWindow{}, nil)
	f.metrics.On("ObserveAssignment", "event_booking", 0).Return()

	result, err := f.service.Assign(context.Background(), eventRequest(10, "14:00", "16:00"))

	require.NoError(t, err)
	assert.Empty(t, result.Assigned)
	assert.Zero(t, f.assignments.creates)
	f.staff.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "NotifyStaffAssigned", mock.Anything, mock.Anything)
	f.metrics.AssertExpectations(t)
}

func TestAssign_PartialOverlapDoesNotQualify(t *testing.T) {
	f := newFixture()

	f.availability.On("GetAvailableByWeekday", mock.Anything, domain.Monday).
		Return([]domain.StaffAvailabilityWindow{availableWindow(1, domain.Monday, "09:00", "12:00")}, nil)
	f.metrics.On("ObserveAssignment", "event_booking", 0).Return()

	result, err := f.service.Assign(context.Background(), eventRequest(10, "11:30", "13:00"))

	require.NoError(t, err)
	assert.Empty(t, result.Assigned)
	f.notifier.AssertNotCalled(t, "NotifyStaffAssigned", mock.Anything, mock.Anything)
}

func TestAssign_DeduplicatesStaff(t *testing.T) {
	f := newFixture()
	staff := &domain.Staff{ID: 4, Name: "Oleg", Role: "chef"}

	f.availability.On("GetAvailableByWeekday", mock.Anything, domain.Monday).
		Return([]domain.StaffAvailabilityWindow{
			availableWindow(4, domain.Monday, "07:00", "20:00"),
			availableWindow(4, domain.Monday, "09:00", "18:00"),
		}, nil)
	f.staff.On("GetByID", mock.Anything, int64(4)).Return(staff, nil).Once()
	f.notifier.On("NotifyStaffAssigned", mock.Anything, recipientsAre(4)).Return(nil).Once()
	f.metrics.On("ObserveAssignment", "event_booking", 1).Return()

	result, err := f.service.Assign(context.Background(), eventRequest(10, "10:00", "12:00"))

	require.NoError(t, err)
	assert.Equal(t, []int64{4}, result.StaffIDs())
	assert.Len(t, f.assignments.rows, 1)
	f.staff.AssertExpectations(t)
}

func TestAssign_SkipsMissingStaff(t *testing.T) {
	f := newFixture()

	f.availability.On("GetAvailableByWeekday", mock.Anything, domain.Monday).
		Return([]domain.StaffAvailabilityWindow{
			availableWindow(1, domain.Monday, "07:00", "20:00"),
			availableWindow(2, domain.Monday, "07:00", "20:00"),
		}, nil)
	f.staff.On("GetByID", mock.Anything, int64(1)).Return(nil, staffRepo.ErrStaffNotFound)
	f.staff.On("GetByID", mock.Anything, int64(2)).Return(&domain.Staff{ID: 2, Name: "Ira", Role: "host"}, nil)
	f.notifier.On("NotifyStaffAssigned", mock.Anything, recipientsAre(2)).Return(nil).Once()
	f.metrics.On("ObserveAssignment", "event_booking", 1).Return()

	result, err := f.service.Assign(context.Background(), eventRequest(10, "10:00", "12:00"))

	require.NoError(t, err)
	assert.Equal(t, []int64{2}, result.StaffIDs())
	f.notifier.AssertExpectations(t)
}

func TestAssign_StaffLookupFailureIsInternal(t *testing.T) {
	f := newFixture()

	f.availability.On("GetAvailableByWeekday", mock.Anything, domain.Monday).
		Return([]domain.StaffAvailabilityWindow{availableWindow(1, domain.Monday, "07:00", "20:00")}, nil)
	f.staff.On("GetByID", mock.Anything, int64(1)).Return(nil, errors.New("connection reset"))

	_, err := f.service.Assign(context.Background(), eventRequest(10, "10:00", "12:00"))

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.assignments.rows)
	f.notifier.AssertNotCalled(t, "NotifyStaffAssigned", mock.Anything, mock.Anything)
}

func TestAssign_NotificationFailureDoesNotFail(t *testing.T) {
	f := newFixture()

	f.availability.On("GetAvailableByWeekday", mock.Anything, domain.Monday).
		Return([]domain.StaffAvailabilityWindow{availableWindow(1, domain.Monday, "07:00", "20:00")}, nil)
	f.staff.On("GetByID", mock.Anything, int64(1)).Return(&domain.Staff{ID: 1, Role: "host"}, nil)
	f.notifier.On("NotifyStaffAssigned", mock.Anything, mock.Anything).Return(notificationservice.ErrInvalidResponse)
	f.metrics.On("ObserveAssignment", "event_booking", 1).Return()

	result, err := f.service.Assign(context.Background(), eventRequest(10, "10:00", "12:00"))

	require.NoError(t, err)
	assert.Len(t, result.Assigned, 1)
	assert.Len(t, f.assignments.rows, 1)
}

func TestAssign_ServiceBookingReference(t *testing.T) {
	f := newFixture()

	f.availability.On("GetAvailableByWeekday", mock.Anything, domain.Monday).
		Return([]domain.StaffAvailabilityWindow{availableWindow(3, domain.Monday, "07:00", "20:00")}, nil)
	f.staff.On("GetByID", mock.Anything, int64(3)).Return(&domain.Staff{ID: 3, Role: "stylist"}, nil)
	f.notifier.On("NotifyStaffAssigned", mock.Anything, mock.Anything).Return(nil)
	f.metrics.On("ObserveAssignment", "service_booking", 1).Return()

	req := eventRequest(77, "10:00", "11:00")
	req.BookingType = domain.BookingTypeService
	_, err := f.service.Assign(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, f.assignments.rows, 1)
	row := f.assignments.rows[0]
	assert.Nil(t, row.BookingID)
	require.NotNil(t, row.ServiceBookingID)
	assert.Equal(t, int64(77), *row.ServiceBookingID)
	assert.Equal(t, domain.BookingTypeService, row.BookingType)
	assert.Equal(t, "stylist", row.AssignedRole)
}

func TestReassign_IsIdempotent(t *testing.T) {
	f := newFixture()

	f.availability.On("GetAvailableByWeekday", mock.Anything, domain.Monday).
		Return([]domain.StaffAvailabilityWindow{
			availableWindow(1, domain.Monday, "07:00", "20:00"),
			availableWindow(2, domain.Monday, "12:00", "18:00"),
		}, nil)
	f.staff.On("GetByID", mock.Anything, int64(1)).Return(&domain.Staff{ID: 1, Role: "host"}, nil)
	f.staff.On("GetByID", mock.Anything, int64(2)).Return(&domain.Staff{ID: 2, Role: "waiter"}, nil)
	f.notifier.On("NotifyStaffAssigned", mock.Anything, mock.Anything).Return(nil)
	f.metrics.On("ObserveAssignment", "event_booking", mock.Anything).Return()

	// заранее назначенный вручную сотрудник теряется при переносе
	manual, err := domain.NewAssignedStaff(9, domain.BookingTypeEvent, 10, "manager")
	require.NoError(t, err)
	f.assignments.rows = append(f.assignments.rows, manual)

	req := eventRequest(10, "13:00", "15:00")

	first, err := f.service.Reassign(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Retracted)
	rowsAfterFirst, _ := f.assignments.GetByReservation(context.Background(), domain.BookingTypeEvent, 10)

	second, err := f.service.Reassign(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Retracted)
	rowsAfterSecond, _ := f.assignments.GetByReservation(context.Background(), domain.BookingTypeEvent, 10)

	staffIDs := func(rows []domain.AssignedStaff) []int64 {
		ids := make([]int64, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.StaffID)
		}
		return ids
	}
	assert.Equal(t, []int64{1, 2}, staffIDs(rowsAfterFirst))
	assert.Equal(t, staffIDs(rowsAfterFirst), staffIDs(rowsAfterSecond))
	assert.Equal(t, first.StaffIDs(), second.StaffIDs())
}

func TestReassign_RetractsEvenWhenNobodyQualifies(t *testing.T) {
	f := newFixture()

	f.availability.On("GetAvailableByWeekday", mock.Anything, domain.Monday).
		Return([]domain.StaffAvailabilityWindow{availableWindow(1, domain.Monday, "07:00", "12:00")}, nil)
	f.metrics.On("ObserveAssignment", "event_booking", 0).Return()

	old, err := domain.NewAssignedStaff(1, domain.BookingTypeEvent, 10, "host")
	require.NoError(t, err)
	f.assignments.rows = append(f.assignments.rows, old)

	result, err := f.service.Reassign(context.Background(), eventRequest(10, "18:00", "20:00"))

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Retracted)
	assert.Empty(t, result.Assigned)
	assert.Empty(t, f.assignments.rows)
}

func TestAssign_InvalidRequest(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name    string
		req     *models.AssignRequest
		wantErr error
	}{
		{"nil", nil, ErrInvalidInput},
		{"no id", eventRequest(0, "10:00", "11:00"), ErrInvalidInput},
		{"bad time", eventRequest(1, "25:00", "26:00"), ErrInvalidInput},
		{"reversed", eventRequest(1, "12:00", "11:00"), ErrMalformedWindow},
		{"unknown type", &models.AssignRequest{ReservationID: 1, BookingType: "appointment", Date: monday, TimeFrom: "10:00", TimeTo: "11:00"}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Assign(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	f.availability.AssertNotCalled(t, "GetAvailableByWeekday", mock.Anything, mock.Anything)
}

func TestGetAssignedStaff(t *testing.T) {
	f := newFixture()

	item, err := domain.NewAssignedStaff(5, domain.BookingTypeEvent, 3, "host")
	require.NoError(t, err)
	f.assignments.rows = append(f.assignments.rows, item)
	f.staff.On("GetByID", mock.Anything, int64(5)).Return(&domain.Staff{ID: 5, Name: "Pavel", Role: "manager"}, nil)

	got, err := f.service.GetAssignedStaff(context.Background(), domain.BookingTypeEvent, 3)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Pavel", got[0].Name)
	// роль сохраняется на момент назначения
	assert.Equal(t, "host", got[0].AssignedRole)

	_, err = f.service.GetAssignedStaff(context.Background(), "appointment", 3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
