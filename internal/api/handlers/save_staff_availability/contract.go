package save_staff_availability

import (
	"context"

	"github.com/m04kA/SMC-StaffingService/internal/service/staff/models"
)

type StaffService interface {
	SaveWeeklyAvailability(ctx context.Context, staffID int64, req *models.SaveWeeklyAvailabilityRequest) (*models.WeeklyAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
