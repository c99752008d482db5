package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffingService/internal/api/middleware"
	"github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"
	createBooking "github.com/m04kA/SMC-StaffingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StaffingService/pkg/logger"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createBooking.Response)
	return resp, args.Error(1)
}

const validBody = `{"type":"event_booking","title":"Wedding","date":"2024-02-14","timeFrom":"10:00","timeTo":"12:00"}`

func serve(h *Handler, body string, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	now := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.UserID == 5 && req.Title == "Wedding" && req.TimeFrom == "10:00" && req.TimeTo == "12:00"
	})).Return(&createBooking.Response{
		ID:               10,
		Type:             "event_booking",
		Title:            "Wedding",
		Date:             time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC),
		TimeFrom:         "10:00",
		TimeTo:           "12:00",
		Status:           "pending",
		CreatedBy:        5,
		AssignmentStatus: createBooking.AssignmentAssigned,
		AssignedStaff:    []models.AssignedStaff{{ID: 1, StaffID: 2, Name: "Anna", AssignedRole: "event_staff"}},
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil)

	rec := serve(NewHandler(uc, logger.NewNop()), validBody, "5")

	require.Equal(t, http.StatusCreated, rec.Code)
	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(10), body.ID)
	assert.Equal(t, "2024-02-14", body.Date)
	assert.Equal(t, "assigned", body.AssignmentStatus)
	require.Len(t, body.AssignedStaff, 1)
	assert.Equal(t, int64(2), body.AssignedStaff[0].StaffID)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		userID string
		ucErr  error
		status int
	}{
		{name: "no user", body: validBody, status: http.StatusUnauthorized},
		{name: "bad json", body: `{`, userID: "5", status: http.StatusBadRequest},
		{name: "bad date", body: `{"type":"event_booking","title":"x","date":"14.02.2024","timeFrom":"10:00","timeTo":"12:00"}`, userID: "5", status: http.StatusBadRequest},
		{name: "bad time", body: `{"type":"event_booking","title":"x","date":"2024-02-14","timeFrom":"25:00","timeTo":"12:00"}`, userID: "5", status: http.StatusBadRequest},
		{name: "conflict", body: validBody, userID: "5", ucErr: fmt.Errorf("%w: blocked", createBooking.ErrSlotConflict), status: http.StatusConflict},
		{name: "malformed window", body: validBody, userID: "5", ucErr: createBooking.ErrMalformedWindow, status: http.StatusBadRequest},
		{name: "internal", body: validBody, userID: "5", ucErr: createBooking.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := serve(NewHandler(uc, logger.NewNop()), tt.body, tt.userID)

			assert.Equal(t, tt.status, rec.Code)
			if tt.ucErr == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}
