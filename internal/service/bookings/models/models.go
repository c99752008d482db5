package models

import (
	"time"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	assignmentModels "github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"
)

// BookingResponse бронирование вместе с назначенным персоналом
type BookingResponse struct {
	ID            int64                            `json:"id"`
	Type          string                           `json:"type"`
	Title         string                           `json:"title"`
	ServiceID     *int64                           `json:"serviceId,omitempty"`
	Date          string                           `json:"date"`
	TimeFrom      string                           `json:"timeFrom"`
	TimeTo        string                           `json:"timeTo"`
	Status        string                           `json:"status"`
	Notes         *string                          `json:"notes,omitempty"`
	CreatedBy     int64                            `json:"createdBy"`
	AssignedStaff []assignmentModels.AssignedStaff `json:"assignedStaff"`
	CreatedAt     string                           `json:"createdAt"`
	UpdatedAt     string                           `json:"updatedAt"`
}

// CancelResult итог отмены бронирования
type CancelResult struct {
	ID             int64  `json:"id"`
	Type           string `json:"type"`
	Status         string `json:"status"`
	RetractedCount int64  `json:"retractedCount"`
}

// FromDomainBooking конвертирует бронирование из domain
func FromDomainBooking(booking *domain.Booking, staff []assignmentModels.AssignedStaff) *BookingResponse {
	if staff == nil {
		staff = []assignmentModels.AssignedStaff{}
	}
	return &BookingResponse{
		ID:            booking.ID,
		Type:          string(booking.Type),
		Title:         booking.Title,
		ServiceID:     booking.ServiceID,
		Date:          booking.Date.Format(domain.DateFormat),
		TimeFrom:      booking.TimeFrom.String(),
		TimeTo:        booking.TimeTo.String(),
		Status:        string(booking.Status),
		Notes:         booking.Notes,
		CreatedBy:     booking.CreatedBy,
		AssignedStaff: staff,
		CreatedAt:     booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     booking.UpdatedAt.Format(time.RFC3339),
	}
}
