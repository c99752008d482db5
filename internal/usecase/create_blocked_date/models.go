package create_blocked_date

import (
	"time"

	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// Request модель запроса на блокировку даты
// StartTime и EndTime не заданы - блокируется весь день
type Request struct {
	UserID    int64
	Date      time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Reason    *string
}

// Response модель ответа с созданной блокировкой
type Response struct {
	ID        int64
	Date      time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString
	WholeDay  bool
	Reason    *string
	CreatedAt time.Time
}
