package check_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/service/conflicts"
	"github.com/m04kA/SMC-StaffingService/pkg/logger"
	"github.com/m04kA/SMC-StaffingService/pkg/ptr"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

var date = time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) GetByDate(ctx context.Context, d time.Time, kinds []domain.ReservationKind) ([]domain.ReservationWindow, error) {
	args := m.Called(ctx, d, kinds)
	windows, _ := args.Get(0).([]domain.ReservationWindow)
	return windows, args.Error(1)
}

func TestExecute(t *testing.T) {
	repo := &mockReservationRepo{}
	repo.On("GetByDate", mock.Anything, date, mock.Anything).Return([]domain.ReservationWindow{
		{ID: 1, Kind: domain.KindBlockedDate, Date: date, Status: domain.StatusReserved},
		{ID: 2, Kind: domain.KindEventBooking, Date: date, TimeFrom: ptr.Ptr(types.TimeString("18:00")), TimeTo: ptr.Ptr(types.TimeString("22:00")), Status: domain.StatusConfirmed},
	}, nil)

	uc := NewUseCase(repo, conflicts.NewChecker(conflicts.Inclusive), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		Date:     date,
		TimeFrom: ptr.Ptr(types.TimeString("09:00")),
		TimeTo:   ptr.Ptr(types.TimeString("10:00")),
	})
	require.NoError(t, err)
	assert.True(t, resp.Conflict)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, domain.KindBlockedDate, resp.Conflicts[0].Kind)
}

func TestExecute_ExcludeSelf(t *testing.T) {
	repo := &mockReservationRepo{}
	repo.On("GetByDate", mock.Anything, date, []domain.ReservationKind{domain.KindEventBooking}).Return([]domain.ReservationWindow{
		{ID: 2, Kind: domain.KindEventBooking, Date: date, TimeFrom: ptr.Ptr(types.TimeString("18:00")), TimeTo: ptr.Ptr(types.TimeString("22:00")), Status: domain.StatusConfirmed},
	}, nil)

	uc := NewUseCase(repo, conflicts.NewChecker(conflicts.Inclusive), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		Date:     date,
		TimeFrom: ptr.Ptr(types.TimeString("19:00")),
		TimeTo:   ptr.Ptr(types.TimeString("23:00")),
		Kinds:    []domain.ReservationKind{domain.KindEventBooking},
		Exclude:  &domain.ReservationRef{Kind: domain.KindEventBooking, ID: 2},
	})
	require.NoError(t, err)
	assert.False(t, resp.Conflict)
	assert.Empty(t, resp.Conflicts)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&mockReservationRepo{}, conflicts.NewChecker(conflicts.Inclusive), logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: date, Kinds: []domain.ReservationKind{"party"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Date:     date,
		TimeFrom: ptr.Ptr(types.TimeString("10:00")),
		TimeTo:   ptr.Ptr(types.TimeString("10:00")),
	})
	assert.ErrorIs(t, err, ErrMalformedWindow)
}
