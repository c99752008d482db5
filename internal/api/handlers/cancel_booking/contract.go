package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, bookingType domain.BookingType, id int64, userID int64) (*models.CancelResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
