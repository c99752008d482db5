package get_booking_staff

import (
	"context"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"
)

type AssignmentService interface {
	GetAssignedStaff(ctx context.Context, bookingType domain.BookingType, reservationID int64) ([]models.AssignedStaff, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
