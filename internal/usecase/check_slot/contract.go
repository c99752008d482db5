package check_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/service/conflicts"
)

// ReservationRepository интерфейс чтения занятости календаря
type ReservationRepository interface {
	GetByDate(ctx context.Context, date time.Time, kinds []domain.ReservationKind) ([]domain.ReservationWindow, error)
}

// ConflictChecker интерфейс проверки пересечений
type ConflictChecker interface {
	FindConflicts(candidate conflicts.Candidate, existing []domain.ReservationWindow) []domain.ReservationWindow
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
