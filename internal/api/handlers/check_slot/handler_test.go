package check_slot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	checkSlot "github.com/m04kA/SMC-StaffingService/internal/usecase/check_slot"
	"github.com/m04kA/SMC-StaffingService/pkg/logger"
	"github.com/m04kA/SMC-StaffingService/pkg/ptr"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *checkSlot.Request) (*checkSlot.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*checkSlot.Response)
	return resp, args.Error(1)
}

func TestParseQuery(t *testing.T) {
	req, err := parseQuery(url.Values{
		"date":        {"2024-02-14"},
		"timeFrom":    {"09:30"},
		"timeTo":      {"11:00"},
		"kinds":       {"event_booking, blocked_date"},
		"excludeKind": {"event_booking"},
		"excludeId":   {"12"},
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), req.Date)
	assert.Equal(t, types.TimeString("09:30"), *req.TimeFrom)
	assert.Equal(t, types.TimeString("11:00"), *req.TimeTo)
	assert.Equal(t, []domain.ReservationKind{domain.KindEventBooking, domain.KindBlockedDate}, req.Kinds)
	assert.Equal(t, &domain.ReservationRef{Kind: domain.KindEventBooking, ID: 12}, req.Exclude)

	_, err = parseQuery(url.Values{"date": {"tomorrow"}})
	assert.Error(t, err)

	_, err = parseQuery(url.Values{"date": {"2024-02-14"}, "excludeKind": {"event_booking"}})
	assert.Error(t, err)
}

func TestHandle(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&checkSlot.Response{
		Conflict: true,
		Conflicts: []domain.ReservationWindow{{
			ID:       3,
			Kind:     domain.KindBlockedDate,
			TimeFrom: ptr.Ptr(types.TimeString("08:00")),
			TimeTo:   ptr.Ptr(types.TimeString("12:00")),
			Status:   domain.StatusReserved,
		}},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec,
		httptest.NewRequest(http.MethodGet, "/api/v1/calendar/conflicts?date=2024-02-14&timeFrom=10:00&timeTo=11:00", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body CheckSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Conflict)
	require.Len(t, body.Conflicts, 1)
	assert.Equal(t, "blocked_date", body.Conflicts[0].Kind)
	assert.Equal(t, "08:00", *body.Conflicts[0].TimeFrom)
}

func TestHandle_BadQuery(t *testing.T) {
	uc := &mockUseCase{}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/conflicts", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
