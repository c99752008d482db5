package get_available_staff

import (
	"time"

	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// Request модель запроса на получение свободного персонала
type Request struct {
	Date     time.Time        // Дата (без времени)
	TimeFrom types.TimeString // Начало интервала
	TimeTo   types.TimeString // Окончание интервала
}

// Response персонал, который был бы назначен на интервал
type Response struct {
	Date     time.Time
	Weekday  string
	TimeFrom types.TimeString
	TimeTo   types.TimeString
	Blocked  bool // интервал пересекается с блокирующим резервированием
	Staff    []Staff
}

// Staff сотрудник, чьё окно покрывает интервал
type Staff struct {
	ID   int64
	Name string
	Role string
}
