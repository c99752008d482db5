package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"
	createBooking "github.com/m04kA/SMC-StaffingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Type      string  `json:"type"` // event_booking | service_booking
	Title     string  `json:"title"`
	ServiceID *int64  `json:"serviceId,omitempty"`
	Date      string  `json:"date"`     // "2024-02-14"
	TimeFrom  string  `json:"timeFrom"` // "10:00"
	TimeTo    string  `json:"timeTo"`   // "12:00"
	Status    *string `json:"status,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64                  `json:"id"`
	Type             string                 `json:"type"`
	Title            string                 `json:"title"`
	ServiceID        *int64                 `json:"serviceId,omitempty"`
	Date             string                 `json:"date"`
	TimeFrom         string                 `json:"timeFrom"`
	TimeTo           string                 `json:"timeTo"`
	Status           string                 `json:"status"`
	Notes            *string                `json:"notes,omitempty"`
	CreatedBy        int64                  `json:"createdBy"`
	AssignmentStatus string                 `json:"assignmentStatus"`
	AssignedStaff    []models.AssignedStaff `json:"assignedStaff"`
	CreatedAt        string                 `json:"createdAt"`
	UpdatedAt        string                 `json:"updatedAt"`
}

type parseError struct {
	field string
	err   error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("%s: %v", e.field, e.err)
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, &parseError{field: "date", err: err}
	}

	timeFrom, err := types.NewTimeStringFromString(r.TimeFrom)
	if err != nil {
		return nil, &parseError{field: "timeFrom", err: err}
	}

	timeTo, err := types.NewTimeStringFromString(r.TimeTo)
	if err != nil {
		return nil, &parseError{field: "timeTo", err: err}
	}

	return &createBooking.Request{
		UserID:    userID,
		Type:      domain.BookingType(r.Type),
		Title:     r.Title,
		ServiceID: r.ServiceID,
		Date:      date,
		TimeFrom:  timeFrom,
		TimeTo:    timeTo,
		Status:    r.Status,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	assigned := resp.AssignedStaff
	if assigned == nil {
		assigned = []models.AssignedStaff{}
	}
	return &BookingResponse{
		ID:               resp.ID,
		Type:             resp.Type,
		Title:            resp.Title,
		ServiceID:        resp.ServiceID,
		Date:             resp.Date.Format(domain.DateFormat),
		TimeFrom:         resp.TimeFrom.String(),
		TimeTo:           resp.TimeTo.String(),
		Status:           resp.Status,
		Notes:            resp.Notes,
		CreatedBy:        resp.CreatedBy,
		AssignmentStatus: resp.AssignmentStatus,
		AssignedStaff:    assigned,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
