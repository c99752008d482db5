package update_booking_schedule

import (
	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"
	updateSchedule "github.com/m04kA/SMC-StaffingService/internal/usecase/update_booking_schedule"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Date     string `json:"date"`
	TimeFrom string `json:"timeFrom"`
	TimeTo   string `json:"timeTo"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ID               int64                  `json:"id"`
	Type             string                 `json:"type"`
	Title            string                 `json:"title"`
	Date             string                 `json:"date"`
	TimeFrom         string                 `json:"timeFrom"`
	TimeTo           string                 `json:"timeTo"`
	Status           string                 `json:"status"`
	AssignmentStatus string                 `json:"assignmentStatus"`
	RetractedCount   int64                  `json:"retractedCount"`
	AssignedStaff    []models.AssignedStaff `json:"assignedStaff"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSchedule.Response) *ScheduleResponse {
	assigned := resp.AssignedStaff
	if assigned == nil {
		assigned = []models.AssignedStaff{}
	}
	return &ScheduleResponse{
		ID:               resp.ID,
		Type:             resp.Type,
		Title:            resp.Title,
		Date:             resp.Date.Format(domain.DateFormat),
		TimeFrom:         resp.TimeFrom.String(),
		TimeTo:           resp.TimeTo.String(),
		Status:           resp.Status,
		AssignmentStatus: resp.AssignmentStatus,
		RetractedCount:   resp.RetractedCount,
		AssignedStaff:    assigned,
	}
}
