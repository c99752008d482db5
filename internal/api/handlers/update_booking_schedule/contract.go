package update_booking_schedule

import (
	"context"

	updateSchedule "github.com/m04kA/SMC-StaffingService/internal/usecase/update_booking_schedule"
)

type UpdateScheduleUseCase interface {
	Execute(ctx context.Context, req *updateSchedule.Request) (*updateSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
