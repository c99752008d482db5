package check_slot

import (
	"time"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// Request запрос на проверку слота календаря
// TimeFrom/TimeTo не заданы - проверяется весь день
type Request struct {
	Date     time.Time
	TimeFrom *types.TimeString
	TimeTo   *types.TimeString
	Kinds    []domain.ReservationKind // пусто - все виды
	Exclude  *domain.ReservationRef   // резервирование, которое переносится
}

// Response результат проверки
type Response struct {
	Conflict  bool
	Conflicts []domain.ReservationWindow
}
